// Package status implements the status command: it reports, per manifest
// destination, whether the staged file is present and still matches what a
// fresh staging run would produce.
package status

import (
	"bytes"
	"os"
	"strings"

	"github.com/evanmartell/shortstage/pkg/config"
	"github.com/evanmartell/shortstage/pkg/errors"
	"github.com/evanmartell/shortstage/pkg/filesystem"
	"github.com/evanmartell/shortstage/pkg/logging"
	"github.com/evanmartell/shortstage/pkg/manifest"
	"github.com/evanmartell/shortstage/pkg/paths"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Options defines the options for the Status command.
type Options struct {
	// SourceDir is the directory holding the flat source files.
	SourceDir string

	// Root is the target project root to inspect.
	Root string

	// FileSystem is the filesystem to operate on. Nil means the OS
	// filesystem.
	FileSystem types.FS
}

// Status compares every manifest destination under the root against its
// expected content and reports staged, modified, or missing per entry.
func Status(opts Options) (*types.StatusResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Str("root", opts.Root).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	p, err := paths.New(opts.SourceDir, opts.Root)
	if err != nil {
		return nil, err
	}

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
	if err := m.Validate(); err != nil {
		return nil, err
	}

	result := &types.StatusResult{Root: p.Root()}

	for _, e := range m.Entries {
		expected, err := fs.ReadFile(p.SourceFile(e.Source))
		if err != nil {
			if os.IsNotExist(err) {
				// Without the source we can only check presence
				result.Entries = append(result.Entries, presence(fs, p, e.Dest))
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read source %s", e.Source)
		}
		result.Entries = append(result.Entries, compare(fs, p, e.Dest, expected))
	}

	for _, f := range m.InitFiles {
		result.Entries = append(result.Entries, compare(fs, p, f.Dest, []byte(f.Content)))
	}

	reqContent := strings.Join(m.Requirements, "\n") + "\n"
	result.Entries = append(result.Entries, compare(fs, p, manifest.RequirementsFile, []byte(reqContent)))

	return result, nil
}

// compare checks a destination against its expected bytes.
func compare(fs types.FS, p *paths.Paths, dest string, expected []byte) types.EntryStatus {
	actual, err := fs.ReadFile(p.TargetFile(dest))
	if err != nil {
		return types.EntryStatus{Dest: dest, State: types.StateMissing}
	}
	if !bytes.Equal(actual, expected) {
		return types.EntryStatus{Dest: dest, State: types.StateModified}
	}
	return types.EntryStatus{Dest: dest, State: types.StateStaged}
}

// presence only checks that the destination exists.
func presence(fs types.FS, p *paths.Paths, dest string) types.EntryStatus {
	if _, err := fs.Stat(p.TargetFile(dest)); err != nil {
		return types.EntryStatus{Dest: dest, State: types.StateMissing}
	}
	return types.EntryStatus{Dest: dest, State: types.StateStaged}
}
