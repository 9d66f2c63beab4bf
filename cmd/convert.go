package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow/md2notion/md2notion"
	"github.com/studyflow/md2notion/notion"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Parse Markdown and print the block tree as JSON",
	Long:  "Reads Markdown from a file or stdin and prints the compiled block list as indented JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		blocks := md2notion.NewTranslator().Translate(string(input))
		out, err := notion.ToJSON(blocks)
		if err != nil {
			return fmt.Errorf("encode blocks: %w", err)
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
