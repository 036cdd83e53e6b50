package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asengupta/notequiz/internal/config"
	"github.com/asengupta/notequiz/internal/eventlog"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect backend attempt events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent backend attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg := config.Load()
		if cfg.EventDBPath == "" {
			return fmt.Errorf("NOTEQUIZ_EVENT_DB is not set")
		}

		store, err := eventlog.Open(cfg.EventDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-10s  %-12s  %-7s  %s\n",
			"ID", "Timestamp", "Engine", "Status", "Ms", "Error")
		fmt.Println(strings.Repeat("-", 90))

		for _, e := range entries {
			errMsg := e.Error
			if len(errMsg) > 40 {
				errMsg = errMsg[:40]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-12s  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Engine,
				e.Status,
				e.LatencyMs,
				errMsg,
			)
		}
		return nil
	},
}

func init() {
	eventsListCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
	eventsCmd.AddCommand(eventsListCmd)
}
