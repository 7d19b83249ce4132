package staging

import (
	"fmt"
	"strings"

	"github.com/evanmartell/shortstage/pkg/manifest"
	"github.com/evanmartell/shortstage/pkg/paths"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Default permission bits for staged files and directories. Only the entry
// point receives the executable bit.
const (
	dirMode        uint32 = 0755
	fileMode       uint32 = 0644
	executableMode uint32 = 0755
)

// Plan turns a manifest into the ordered list of operations a staging run
// performs: directory creation, copies in manifest order, package-init
// writes, the requirements write, and finally the entry-point chmod.
func Plan(m *manifest.Manifest, p *paths.Paths) ([]types.Operation, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var ops []types.Operation

	mode := dirMode
	ops = append(ops, types.Operation{
		Type:        types.OperationCreateDir,
		Target:      p.Root(),
		Mode:        &mode,
		Description: fmt.Sprintf("Create project root %s", p.Root()),
	})
	for _, dir := range m.Dirs {
		ops = append(ops, types.Operation{
			Type:        types.OperationCreateDir,
			Target:      p.TargetDir(dir),
			Mode:        &mode,
			Description: fmt.Sprintf("Create directory %s", dir),
		})
	}

	copyMode := fileMode
	for _, e := range m.Entries {
		ops = append(ops, types.Operation{
			Type:        types.OperationCopyFile,
			Source:      p.SourceFile(e.Source),
			Target:      p.TargetFile(e.Dest),
			Mode:        &copyMode,
			Description: fmt.Sprintf("Copy %s to %s", e.Source, e.Dest),
		})
	}

	for _, f := range m.InitFiles {
		ops = append(ops, types.Operation{
			Type:        types.OperationWriteFile,
			Target:      p.TargetFile(f.Dest),
			Content:     f.Content,
			Mode:        &copyMode,
			Description: fmt.Sprintf("Create package init %s", f.Dest),
		})
	}

	ops = append(ops, types.Operation{
		Type:        types.OperationWriteFile,
		Target:      p.TargetFile(manifest.RequirementsFile),
		Content:     strings.Join(m.Requirements, "\n") + "\n",
		Mode:        &copyMode,
		Description: fmt.Sprintf("Write %s", manifest.RequirementsFile),
	})

	if m.EntryPointDest != "" {
		execMode := executableMode
		ops = append(ops, types.Operation{
			Type:        types.OperationChmod,
			Target:      p.TargetFile(m.EntryPointDest),
			Mode:        &execMode,
			Description: fmt.Sprintf("Mark %s executable", m.EntryPointDest),
		})
	}

	return ops, nil
}
