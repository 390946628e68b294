package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	configPath string
	storePath  string
	bankPath   string
)

// defaultBankTTL bounds how long a parsed bank file is served from cache.
const defaultBankTTL = 5 * time.Minute

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skilltest",
		Short: "Desktop skill test: register, take MCQ quizzes, review scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(configPath, storePath, bankPath)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config")
	cmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the record store (overrides config)")
	cmd.PersistentFlags().StringVar(&bankPath, "bank", "", "path to a YAML question bank (defaults to the built-in bank)")
	cmd.AddCommand(newInitCmd(&configPath, &storePath))
	return cmd
}
