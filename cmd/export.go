package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studyflow/md2notion/internal/config"
	"github.com/studyflow/md2notion/internal/export"
	"github.com/studyflow/md2notion/internal/notionclient"
	"github.com/studyflow/md2notion/md2notion"
)

var (
	exportParent string
	exportTitle  string
	exportJSON   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a Markdown document to a Notion page",
	Long: `Compiles the Markdown input into blocks and uploads them under the given
parent, which may be a page id or a database id (looked up automatically).
Progress is reported per chunk. Uploads are not rolled back on failure, so a
failed export can leave a partial page behind; re-run after fixing the cause.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, err := cfg.RequireToken()
		if err != nil {
			return err
		}

		title := exportTitle
		if title == "" && len(args) > 0 {
			title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}
		if title == "" {
			title = "Untitled export"
		}

		log := newLogger()
		blocks := md2notion.NewTranslator().Translate(string(input))

		client := notionclient.New(token, cfg.Notion.Timeout)
		exporter := export.NewExporter(client,
			export.WithChunkSize(cfg.Export.ChunkSize),
			export.WithLogger(log),
		)

		onEvent := progressPrinter()
		if exportJSON {
			stream := export.NewStreamWriter(os.Stdout)
			onEvent = func(ev export.Event) { _ = stream.Write(ev) }
		}

		pageID, err := exporter.Export(cmd.Context(), exportParent, title, blocks, onEvent)
		if err != nil {
			return err
		}
		if !exportJSON {
			fmt.Printf("created page %s\n", pageID)
		}
		return nil
	},
}

func progressPrinter() func(export.Event) {
	return func(ev export.Event) {
		switch ev.Type {
		case export.EventStarted:
			fmt.Fprintf(os.Stderr, "exporting %d blocks in %d chunks\n", ev.TotalBlocks, ev.TotalChunks)
		case export.EventChunk:
			fmt.Fprintf(os.Stderr, "chunk %d/%d uploaded\n", ev.Index, ev.TotalChunks)
		case export.EventError:
			fmt.Fprintf(os.Stderr, "error: %s\n", ev.Message)
		}
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportParent, "parent", "", "Parent page or database id (required)")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Title of the created page (defaults to the file name)")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Emit progress as newline-delimited JSON on stdout")
	_ = exportCmd.MarkFlagRequired("parent")
	rootCmd.AddCommand(exportCmd)
}
