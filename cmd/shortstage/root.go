package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/evanmartell/shortstage/internal/version"
	"github.com/evanmartell/shortstage/pkg/logging"
)

var (
	verbosity int
	dryRun    bool

	rootCmd = &cobra.Command{
		Use:   "shortstage",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview operations without executing them")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for shortstage`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shortstage version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
