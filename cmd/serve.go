package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/asengupta/notequiz/internal/api"
	"github.com/asengupta/notequiz/internal/config"
	"github.com/asengupta/notequiz/internal/eventlog"
	"github.com/asengupta/notequiz/internal/quiz"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := newLogger()

		engines, err := buildEngines(cfg)
		if err != nil {
			return err
		}

		var sink quiz.EventSink
		if cfg.EventDBPath != "" {
			store, err := eventlog.Open(cfg.EventDBPath)
			if err != nil {
				return fmt.Errorf("open event log: %w", err)
			}
			defer store.Close()
			sink = store
		}

		orch := quiz.NewOrchestrator(engines, cfg.Generation, logger, sink)

		app := fiber.New()
		api.RegisterRoutes(app, orch, engines, logger)

		logger.Info("server started", "addr", cfg.ServerAddr, "backends", len(engines))
		return app.Listen(cfg.ServerAddr)
	},
}
