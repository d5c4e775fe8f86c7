package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"prepscore/internal/config"
)

var (
	// Version info set from main
	version = "dev"
	commit  = "unknown"

	outputFmt string
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c string) {
	version = v
	commit = c
}

var rootCmd = &cobra.Command{
	Use:   "prepscore",
	Short: "Score interview-practice diagnostics",
	Long: `prepscore scores the four diagnostic rounds (coding, technical explanation,
recruiter introduction, behavioral story) with a fixed rule table, classifies
overall readiness, and lists the weakest areas to practice.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is normal outside development.
		_ = config.Load()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "prepscore %s (%s)\n", version, commit)
	},
}
