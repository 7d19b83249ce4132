// Package paths provides centralized path handling for shortstage.
// It resolves the flat source directory and the target project root and
// validates that every staged destination stays inside the root.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/evanmartell/shortstage/pkg/errors"
)

// Default directories and files
const (
	// DefaultRootDir is the default name of the staged project root
	DefaultRootDir = "shorts-agents"

	// ConfigFileName is the name of the optional tool configuration file,
	// looked up in the source directory
	ConfigFileName = ".shortstage.toml"

	// OverlayFileName is the name of the optional manifest overlay file,
	// looked up in the source directory
	OverlayFileName = "shortstage.yaml"
)

// Paths holds the resolved absolute source and target locations for a run.
type Paths struct {
	sourceDir string
	root      string
}

// New resolves the source directory and target root to absolute paths.
// An empty sourceDir means the current directory; an empty root means
// DefaultRootDir under the current directory.
func New(sourceDir, root string) (*Paths, error) {
	if sourceDir == "" {
		sourceDir = "."
	}
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve source directory %s", sourceDir)
	}

	if root == "" {
		root = DefaultRootDir
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve root directory %s", root)
	}

	return &Paths{sourceDir: absSource, root: absRoot}, nil
}

// SourceDir returns the absolute flat source directory
func (p *Paths) SourceDir() string {
	return p.sourceDir
}

// Root returns the absolute target project root
func (p *Paths) Root() string {
	return p.root
}

// SourceFile returns the absolute path of a source file
func (p *Paths) SourceFile(rel string) string {
	return filepath.Join(p.sourceDir, rel)
}

// TargetFile returns the absolute path of a staged destination
func (p *Paths) TargetFile(rel string) string {
	return filepath.Join(p.root, rel)
}

// TargetDir returns the absolute path of a subdirectory under the root
func (p *Paths) TargetDir(rel string) string {
	return filepath.Join(p.root, rel)
}

// ConfigFile returns the path of the optional tool configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.sourceDir, ConfigFileName)
}

// OverlayFile returns the path of the optional manifest overlay file
func (p *Paths) OverlayFile() string {
	return filepath.Join(p.sourceDir, OverlayFileName)
}

// ValidateRelative checks that a manifest path is a clean relative path
// that cannot escape the directory it is joined to.
func ValidateRelative(rel string) error {
	if rel == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest path cannot be empty")
	}
	if filepath.IsAbs(rel) {
		return errors.Newf(errors.ErrManifestInvalid, "manifest path must be relative: %s", rel)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrManifestInvalid, "manifest path escapes the root: %s", rel)
	}
	return nil
}
