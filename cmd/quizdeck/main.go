package main

import (
	"os"

	"github.com/spf13/cobra"

	"quizdeck/internal/config"
)

var configPath string

// rootCmd launches the GUI, optionally preloading a question file.
var rootCmd = &cobra.Command{
	Use:   "quizdeck [question-file]",
	Short: "QuizDeck is a desktop multiple-choice quiz player",
	Long: `QuizDeck reads a delimited question file, shows its questions one at a
time in a desktop window, and tracks score and time. The active question
set can be filtered by the group label of each question.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApplication,
}

// validateCmd checks a question file without opening a window.
var validateCmd = &cobra.Command{
	Use:   "validate <question-file>",
	Short: "Check a question file and print its import report",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directory containing quizdeck.yaml")
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runApplication(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	application, err := NewApplication(cfg)
	if err != nil {
		return err
	}

	var startupFile string
	if len(args) == 1 {
		startupFile = args[0]
	}

	return application.Run(startupFile)
}
