package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evanmartell/shortstage/pkg/commands/status"
	"github.com/evanmartell/shortstage/pkg/output"
)

func runStatus(cmd *cobra.Command, args []string) error {
	renderer := output.NewRenderer(os.Stdout, noColorConfigured(stageSource))

	result, err := status.Status(status.Options{
		SourceDir: stageSource,
		Root:      stageRoot,
	})
	if err != nil {
		return err
	}

	renderer.RenderStatus(result)
	return nil
}
