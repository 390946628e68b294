package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"skilltest/internal/config"
)

// newInitCmd bootstraps the record store without starting the UI.
// Running it against an existing store is a no-op.
func newInitCmd(configPath, storeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			recordStore, err := openStore(cfg, *storeFlag, nil)
			if err != nil {
				return err
			}
			if err := recordStore.EnsureInitialized(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record store ready at %s\n", recordStore.Path())
			return nil
		},
	}
}
