package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflow/md2notion/internal/config"
	"github.com/studyflow/md2notion/internal/export"
	"github.com/studyflow/md2notion/internal/notionclient"
	"github.com/studyflow/md2notion/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the export pipeline over HTTP",
	Long: `Starts an HTTP server with a single endpoint, POST /v1/exports, that
accepts {"markdown", "parentId", "title"} and streams progress events back
as newline-delimited JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, err := cfg.RequireToken()
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.Serve.Addr
		}

		log := newLogger()
		client := notionclient.New(token, cfg.Notion.Timeout)
		exporter := export.NewExporter(client,
			export.WithChunkSize(cfg.Export.ChunkSize),
			export.WithLogger(log),
		)

		srv := &http.Server{
			Addr:              addr,
			Handler:           server.New(exporter, log).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to serve.addr from config)")
	rootCmd.AddCommand(serveCmd)
}
