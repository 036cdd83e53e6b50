package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/asengupta/notequiz/internal/backend"
	"github.com/asengupta/notequiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "notequiz",
	Short: "Generate study questions from notes",
	Long:  "Notequiz turns free-form study notes into question/answer pairs using local language models, with a deterministic offline fallback when no model is available.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildEngines instantiates the configured backends in priority order.
func buildEngines(cfg config.Config) ([]backend.Engine, error) {
	var engines []backend.Engine
	for _, d := range cfg.Backends() {
		e, err := backend.New(d)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	return engines, nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
