package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the tailoring operations as JSON endpoints under /v1.`,
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to port from config, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer closeFn()

	srv := server.New(server.Config{
		Port:              cfg.Port,
		MaxCertifications: cfg.MaxCertifications,
	}, svc, logger)

	return srv.Start(ctx)
}
