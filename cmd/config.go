package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanatui/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the settings file and its values",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.NewFileStore(resolveConfigPath(cmd))

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			if err := store.Save(config.Defaults()); err != nil {
				return fmt.Errorf("reset settings: %w", err)
			}
		}

		s, err := store.Load()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "path:          ", store.Path())
		fmt.Fprintln(out, "writing_system:", s.WritingSystem)
		fmt.Fprintln(out, "diacritics:    ", s.Diacritics)
		fmt.Fprintln(out, "show_timer:    ", s.ShowTimer)
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("reset", false, "Overwrite the settings file with defaults")
}
