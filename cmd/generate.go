package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asengupta/notequiz/internal/config"
	"github.com/asengupta/notequiz/internal/quiz"
)

var generateCmd = &cobra.Command{
	Use:   "generate [notes-file]",
	Short: "Generate QA records once and print them as JSON",
	Long:  "Reads notes from the given file (or stdin when omitted), runs the backend fallback chain once, and prints the resulting records as indented JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numQuestions, _ := cmd.Flags().GetInt("questions")

		var notes []byte
		var err error
		if len(args) == 1 {
			notes, err = os.ReadFile(args[0])
		} else {
			notes, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read notes: %w", err)
		}

		cfg := config.Load()
		logger := newLogger()
		engines, err := buildEngines(cfg)
		if err != nil {
			return err
		}

		orch := quiz.NewOrchestrator(engines, cfg.Generation, logger, nil)
		recs := orch.Generate(cmd.Context(), quiz.Request{
			Notes:        string(notes),
			NumQuestions: numQuestions,
		})

		out, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("questions", 0, "Number of questions to generate (default from NOTEQUIZ_NUM_QUESTIONS, or 6)")
}
