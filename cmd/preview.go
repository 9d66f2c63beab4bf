package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow/md2notion/md2notion"
	"github.com/studyflow/md2notion/notion2md"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Round-trip Markdown through the block compiler",
	Long: `Parses Markdown into blocks and renders them back to Markdown. Useful for
seeing exactly what survives the supported subset before exporting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		blocks := md2notion.NewTranslator().Translate(string(input))
		fmt.Println(notion2md.NewTranslator().Translate(blocks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
