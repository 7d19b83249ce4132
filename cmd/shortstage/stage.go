package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evanmartell/shortstage/pkg/commands/stage"
	"github.com/evanmartell/shortstage/pkg/config"
	"github.com/evanmartell/shortstage/pkg/filesystem"
	"github.com/evanmartell/shortstage/pkg/output"
	"github.com/evanmartell/shortstage/pkg/paths"
)

var (
	stageSource string
	stageRoot   string
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: MsgStageShort,
	Long:  MsgStageLong,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer := output.NewRenderer(os.Stdout, noColorConfigured(stageSource))

		result, err := stage.Stage(stage.Options{
			SourceDir: stageSource,
			Root:      stageRoot,
			DryRun:    dryRun,
		})
		if err != nil {
			return err
		}

		if result.DryRun {
			renderer.RenderPlan(result.Operations)
			return nil
		}

		renderer.RenderStageSuccess(result)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: MsgStatusShort,
	Long:  MsgStatusLong,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	stageCmd.Flags().StringVarP(&stageSource, "source", "s", "", "Directory holding the flat source files (default: current directory)")
	stageCmd.Flags().StringVarP(&stageRoot, "root", "r", "", "Target project root (default: "+paths.DefaultRootDir+")")

	statusCmd.Flags().StringVarP(&stageSource, "source", "s", "", "Directory holding the flat source files (default: current directory)")
	statusCmd.Flags().StringVarP(&stageRoot, "root", "r", "", "Target project root (default: "+paths.DefaultRootDir+")")
}

// noColorConfigured reads the no_color setting without failing the command;
// rendering should never be the reason a run aborts.
func noColorConfigured(sourceDir string) bool {
	p, err := paths.New(sourceDir, "")
	if err != nil {
		return false
	}
	cfg, err := config.Load(filesystem.NewOS(), p.ConfigFile())
	if err != nil {
		return false
	}
	return cfg.NoColor
}
