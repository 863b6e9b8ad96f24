package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/kanatui/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "kanatui",
	Short: "Kana drills in the terminal",
	Long:  "kanatui drills hiragana and katakana through timed, typed recall of each kana's romaji.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the settings file (overrides "+config.EnvConfigPath+" env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (default under $XDG_STATE_HOME)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().Uint64("seed", 0, "Seed for kana shuffles; 0 picks a random seed")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath returns the settings path using --config flag (highest
// priority), then the env var, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("config")
	return config.ResolvePath(p)
}

// resolveLogPath returns the --log-file flag or the default XDG path.
func resolveLogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		return p
	}
	return config.DefaultLogPath()
}
