package manifest

import (
	"path/filepath"

	"github.com/evanmartell/shortstage/pkg/errors"
	"github.com/evanmartell/shortstage/pkg/paths"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Well-known names in the staged layout
const (
	// AgentsDir is the subdirectory holding the agent modules
	AgentsDir = "agents"

	// UtilsDir is the subdirectory holding the helper modules
	UtilsDir = "utils"

	// PackageInitFile is the name of a generated python package marker
	PackageInitFile = "__init__.py"

	// RequirementsFile is the name of the generated dependency manifest
	RequirementsFile = "requirements.txt"

	// EntryPoint is the staged file that receives the executable bit
	EntryPoint = "main.py"
)

// Content of the generated package-init files
const (
	agentsInitContent = `"""Agent modules for YouTube Shorts Automation."""

from agents.base_agent import Agent
from agents.content_agent import ContentAgent
from agents.audio_agent import AudioAgent
from agents.visual_agent import VisualAgent
from agents.video_agent import VideoAgent
from agents.upload_agent import UploadAgent

__all__ = [
    'Agent',
    'ContentAgent',
    'AudioAgent',
    'VisualAgent',
    'VideoAgent',
    'UploadAgent'
]
`

	utilsInitContent = `"""Utility modules for YouTube Shorts Automation."""

__all__ = [
    'visual_helpers',
    'common'
]
`
)

// Entry maps a flat source file to its destination under the root.
// Both paths are relative; Source to the source directory, Dest to the root.
type Entry struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// Generated is a file the stager writes rather than copies.
type Generated struct {
	Dest    string
	Content string
}

// Manifest is the ordered description of everything a staging run produces:
// the directory tree, the file copies, the generated package-init files,
// the dependency manifest, and the executable entry point.
type Manifest struct {
	// Dirs are subdirectories created under the root before any copy
	Dirs []string

	// Entries are the source-to-destination copies, in execution order
	Entries []Entry

	// Optional are copies performed only when their source file exists.
	// ResolveOptional promotes them into Entries.
	Optional []Entry

	// InitFiles are the generated python package markers
	InitFiles []Generated

	// Requirements are the package names written to RequirementsFile,
	// verbatim, one per line
	Requirements []string

	// EntryPointDest is the destination path that is marked executable
	EntryPointDest string
}

// Default returns the fixed manifest for the shorts-agents project skeleton.
func Default() *Manifest {
	return &Manifest{
		Dirs: []string{AgentsDir, UtilsDir},
		Entries: []Entry{
			{Source: "main.py", Dest: "main.py"},
			{Source: "framework.py", Dest: "framework.py"},
			{Source: "config.py", Dest: "config.py"},
			{Source: "coordinator.py", Dest: "coordinator.py"},
			{Source: "base-agent-py.py", Dest: "agents/base_agent.py"},
			{Source: "content-agent-py.py", Dest: "agents/content_agent.py"},
			{Source: "audio-agent-py.py", Dest: "agents/audio_agent.py"},
			{Source: "visual-agent-py.py", Dest: "agents/visual_agent.py"},
			{Source: "video-agent-py.py", Dest: "agents/video_agent.py"},
			{Source: "upload-agent-py.py", Dest: "agents/upload_agent.py"},
			{Source: "visual-helpers-py.py", Dest: "utils/visual_helpers.py"},
			{Source: "common.py", Dest: "utils/common.py"},
		},
		Optional: []Entry{
			{Source: "README.md", Dest: "README.md"},
		},
		InitFiles: []Generated{
			{Dest: filepath.Join(AgentsDir, PackageInitFile), Content: agentsInitContent},
			{Dest: filepath.Join(UtilsDir, PackageInitFile), Content: utilsInitContent},
		},
		Requirements: []string{
			"ollama",
			"gtts",
			"pydub",
			"pillow",
			"google-auth",
			"google-auth-oauthlib",
			"google-api-python-client",
			"pyyaml",
		},
		EntryPointDest: EntryPoint,
	}
}

// ResolveOptional promotes every optional entry whose source file exists
// into the copy list. A run over a checkout without the optional files
// simply stages less; their absence is never an error.
func (m *Manifest) ResolveOptional(filesystem types.FS, p *paths.Paths) {
	for _, e := range m.Optional {
		if _, err := filesystem.Stat(p.SourceFile(e.Source)); err == nil {
			m.Entries = append(m.Entries, e)
		}
	}
	m.Optional = nil
}

// Validate checks that every path in the manifest is relative and stays
// under its directory, and that the entry point is one of the destinations.
func (m *Manifest) Validate() error {
	for _, dir := range m.Dirs {
		if err := paths.ValidateRelative(dir); err != nil {
			return err
		}
	}

	seen := make(map[string]bool)
	for _, e := range m.Entries {
		if err := paths.ValidateRelative(e.Source); err != nil {
			return err
		}
		if err := paths.ValidateRelative(e.Dest); err != nil {
			return err
		}
		if seen[e.Dest] {
			return errors.Newf(errors.ErrManifestInvalid, "duplicate destination: %s", e.Dest)
		}
		seen[e.Dest] = true
	}

	for _, e := range m.Optional {
		if err := paths.ValidateRelative(e.Source); err != nil {
			return err
		}
		if err := paths.ValidateRelative(e.Dest); err != nil {
			return err
		}
	}

	for _, f := range m.InitFiles {
		if err := paths.ValidateRelative(f.Dest); err != nil {
			return err
		}
	}

	if m.EntryPointDest != "" && !seen[m.EntryPointDest] {
		return errors.Newf(errors.ErrManifestInvalid, "entry point %s is not a copied destination", m.EntryPointDest)
	}

	return nil
}

// Destinations returns every path the manifest produces under the root,
// in production order: copies, package inits, then the requirements file.
func (m *Manifest) Destinations() []string {
	dests := make([]string, 0, len(m.Entries)+len(m.InitFiles)+1)
	for _, e := range m.Entries {
		dests = append(dests, e.Dest)
	}
	for _, f := range m.InitFiles {
		dests = append(dests, f.Dest)
	}
	dests = append(dests, RequirementsFile)
	return dests
}
