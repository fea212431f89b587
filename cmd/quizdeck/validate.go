package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quizdeck/internal/config"
	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/services"
)

// runValidate imports a question file headlessly and prints the report.
func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	path := args[0]
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open question file: %w", err)
	}
	defer file.Close()

	repository := models.NewQuestionRepository()
	service := services.NewQuestionService(logger.NewNop(), repository, cfg.DelimiterRune())

	out := cmd.OutOrStdout()

	summary, err := service.Load(cmd.Context(), filepath.Base(path), file)
	if err != nil {
		printSkipped(out, summary)
		return err
	}

	fmt.Fprintf(out, "%s: %d questions\n", summary.Source, summary.Loaded)

	fmt.Fprintf(out, "groups (%d):\n", len(summary.Groups))
	for _, group := range summary.Groups {
		count := len(repository.QuestionsInGroup(group))
		fmt.Fprintf(out, "  %s (%d questions)\n", group, count)
	}

	printSkipped(out, summary)
	return nil
}

func printSkipped(out io.Writer, summary services.ImportSummary) {
	if len(summary.Skipped) == 0 {
		return
	}

	fmt.Fprintf(out, "skipped rows (%d):\n", len(summary.Skipped))
	for _, row := range summary.Skipped {
		fmt.Fprintf(out, "  line %d: %s\n", row.Line, row.Reason)
	}
}
