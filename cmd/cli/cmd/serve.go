package cmd

import (
	"context"
	"fmt"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/graceful"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/deliveries/http"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Run the HTTP bridge",
	Long:    `Serves the directory and payment endpoints for a web view until SIGINT or SIGTERM.`,
	Example: "emi-collection serve --config=./config.yaml",
	RunE:    runServe,
}

func runServe(ccmd *cobra.Command, args []string) error {
	s, stop, err := initSetup(ccmd, "cli-serve")
	if err != nil {
		stop()
		return fmt.Errorf("failed to setup app: %w", err)
	}

	ctx := commandContext(ccmd)
	httpServer := http.NewHTTPServer(s.Config, s.NewRelic, s.Service.Controller, s.Metrics)

	graceful.StartProcessAtBackground(httpServer.Start())

	xlog.Info(ctx, "http server started, waiting for shutdown signal...")

	// stoppers run in reverse: http, teardown, then log flush
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, func(ctx context.Context) error {
		stop()
		return nil
	}, func(ctx context.Context) error {
		s.Service.Controller.Teardown()
		return nil
	}, httpServer.Stop())

	xlog.Info(ctx, "http server stopped!")
	return nil
}
