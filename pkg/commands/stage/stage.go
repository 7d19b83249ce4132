// Package stage implements the stage command: it resolves paths, loads
// the optional configuration and overlay, plans the staging operations,
// and executes them.
package stage

import (
	"fmt"
	"time"

	"github.com/evanmartell/shortstage/pkg/config"
	"github.com/evanmartell/shortstage/pkg/filesystem"
	"github.com/evanmartell/shortstage/pkg/logging"
	"github.com/evanmartell/shortstage/pkg/manifest"
	"github.com/evanmartell/shortstage/pkg/paths"
	"github.com/evanmartell/shortstage/pkg/staging"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Options defines the options for the Stage command.
type Options struct {
	// SourceDir is the directory holding the flat source files.
	// Empty means the current directory.
	SourceDir string

	// Root is the target project root. Empty means the configured or
	// default root.
	Root string

	// DryRun previews the plan without touching the filesystem.
	DryRun bool

	// FileSystem is the filesystem to operate on. Nil means the OS
	// filesystem.
	FileSystem types.FS
}

// Stage runs the bootstrap: create the directory tree, copy the manifest
// files in order, write the dependency manifest, and mark the entry point
// executable. It stops at the first error.
func Stage(opts Options) (*types.StageResult, error) {
	log := logging.GetLogger("commands.stage")
	log.Debug().Str("command", "Stage").Str("source", opts.SourceDir).Msg("Executing command")
	defer logging.LogDuration(time.Now(), "stage")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p, err := paths.New(opts.SourceDir, opts.Root)
	if err != nil {
		return nil, err
	}

	// Config can supply the root when no flag was given
	if opts.Root == "" {
		cfg, err := config.Load(fs, p.ConfigFile())
		if err != nil {
			return nil, err
		}
		if cfg.Root != "" {
			p, err = paths.New(opts.SourceDir, cfg.Root)
			if err != nil {
				return nil, err
			}
		}
	}

	m := manifest.Default()
	m.ResolveOptional(fs, p)
	overlay, err := manifest.LoadOverlay(fs, p.OverlayFile())
	if err != nil {
		return nil, err
	}
	if err := m.Apply(overlay); err != nil {
		return nil, err
	}

	ops, err := staging.Plan(m, p)
	if err != nil {
		return nil, err
	}

	executor := staging.NewExecutor(fs, opts.DryRun)
	results, execErr := executor.Execute(ops)

	result := &types.StageResult{
		Root:        p.Root(),
		SourceDir:   p.SourceDir(),
		DryRun:      opts.DryRun,
		Operations:  results,
		EntryPoint:  p.TargetFile(m.EntryPointDest),
		NextCommand: fmt.Sprintf("cd %s && ./%s", p.Root(), m.EntryPointDest),
	}

	if execErr != nil {
		return result, execErr
	}

	log.Info().Str("root", p.Root()).Int("operations", len(results)).Msg("Staging complete")
	return result, nil
}
