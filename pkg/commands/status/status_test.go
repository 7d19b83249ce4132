package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanmartell/shortstage/pkg/commands/stage"
	"github.com/evanmartell/shortstage/pkg/manifest"
	"github.com/evanmartell/shortstage/pkg/testutil"
	"github.com/evanmartell/shortstage/pkg/types"
)

func stagedFS(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	memfs := testutil.NewMemoryFS()
	for _, e := range manifest.Default().Entries {
		memfs.AddFile("/src/"+e.Source, []byte("# "+e.Source+"\n"))
	}
	_, err := stage.Stage(stage.Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)
	return memfs
}

func stateOf(result *types.StatusResult, dest string) types.EntryState {
	for _, e := range result.Entries {
		if e.Dest == dest {
			return e.State
		}
	}
	return ""
}

func TestStatusAllStaged(t *testing.T) {
	memfs := stagedFS(t)

	result, err := Status(Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)

	// Copies, inits, and the requirements file
	require.Len(t, result.Entries, 15)
	for _, e := range result.Entries {
		assert.Equal(t, types.StateStaged, e.State, e.Dest)
	}
}

func TestStatusIncludesReadmeWhenPresent(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	for _, e := range manifest.Default().Entries {
		memfs.AddFile("/src/"+e.Source, []byte("# "+e.Source+"\n"))
	}
	memfs.AddFile("/src/README.md", []byte("# shorts\n"))
	_, err := stage.Stage(stage.Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)

	result, err := Status(Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)

	require.Len(t, result.Entries, 16)
	assert.Equal(t, types.StateStaged, stateOf(result, "README.md"))
}

func TestStatusDetectsDrift(t *testing.T) {
	memfs := stagedFS(t)

	// Mutate one staged file, remove another
	require.NoError(t, memfs.WriteFile("/out/utils/common.py", []byte("# edited\n"), 0644))
	require.NoError(t, memfs.Remove("/out/agents/video_agent.py"))

	result, err := Status(Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)

	assert.Equal(t, types.StateModified, stateOf(result, "utils/common.py"))
	assert.Equal(t, types.StateMissing, stateOf(result, "agents/video_agent.py"))
	assert.Equal(t, types.StateStaged, stateOf(result, "main.py"))
	assert.Equal(t, types.StateStaged, stateOf(result, manifest.RequirementsFile))
}

func TestStatusUnstagedTree(t *testing.T) {
	memfs := testutil.NewMemoryFS()
	for _, e := range manifest.Default().Entries {
		memfs.AddFile("/src/"+e.Source, []byte("# "+e.Source+"\n"))
	}

	result, err := Status(Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)

	for _, e := range result.Entries {
		assert.Equal(t, types.StateMissing, e.State, e.Dest)
	}
}

func TestStatusWithoutSources(t *testing.T) {
	memfs := stagedFS(t)

	// Sources gone: status can still report presence
	for _, e := range manifest.Default().Entries {
		require.NoError(t, memfs.Remove("/src/"+e.Source))
	}

	result, err := Status(Options{SourceDir: "/src", Root: "/out", FileSystem: memfs})
	require.NoError(t, err)
	assert.Equal(t, types.StateStaged, stateOf(result, "main.py"))
}
