package staging

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanmartell/shortstage/pkg/errors"
	"github.com/evanmartell/shortstage/pkg/manifest"
	"github.com/evanmartell/shortstage/pkg/testutil"
)

// seedSources puts every default manifest source into the memory filesystem
func seedSources(m *manifest.Manifest, memfs *testutil.MemoryFS) {
	for _, e := range m.Entries {
		memfs.AddFile("/src/"+e.Source, []byte("# "+e.Source+"\n"))
	}
}

func TestExecuteFullRun(t *testing.T) {
	m := manifest.Default()
	memfs := testutil.NewMemoryFS()
	seedSources(m, memfs)

	ops, err := Plan(m, mustPaths(t))
	require.NoError(t, err)

	results, err := NewExecutor(memfs, false).Execute(ops)
	require.NoError(t, err)
	require.Len(t, results, len(ops))
	for _, res := range results {
		assert.True(t, res.Success, res.Operation.Description)
	}

	// Every destination exists, byte-identical to its source
	for _, e := range m.Entries {
		data, err := memfs.ReadFile("/out/" + e.Dest)
		require.NoError(t, err, e.Dest)
		assert.Equal(t, "# "+e.Source+"\n", string(data))
	}

	// Package inits carry the generated re-export content
	for _, f := range m.InitFiles {
		data, err := memfs.ReadFile("/out/" + f.Dest)
		require.NoError(t, err, f.Dest)
		assert.Equal(t, f.Content, string(data))
	}

	// Requirements file has the 8 fixed names
	data, err := memfs.ReadFile("/out/requirements.txt")
	require.NoError(t, err)
	assert.Equal(t, "ollama\ngtts\npydub\npillow\ngoogle-auth\ngoogle-auth-oauthlib\ngoogle-api-python-client\npyyaml\n", string(data))

	// Only the entry point carries the executable bit
	assert.Equal(t, fs.FileMode(0755), memfs.Mode("/out/main.py"))
	assert.Equal(t, fs.FileMode(0644), memfs.Mode("/out/framework.py"))
	assert.Equal(t, fs.FileMode(0644), memfs.Mode("/out/agents/base_agent.py"))
}

func TestExecuteIdempotent(t *testing.T) {
	m := manifest.Default()
	memfs := testutil.NewMemoryFS()
	seedSources(m, memfs)

	ops, err := Plan(m, mustPaths(t))
	require.NoError(t, err)

	_, err = NewExecutor(memfs, false).Execute(ops)
	require.NoError(t, err)
	_, err = NewExecutor(memfs, false).Execute(ops)
	require.NoError(t, err)

	data, err := memfs.ReadFile("/out/requirements.txt")
	require.NoError(t, err)
	assert.Equal(t, 8, len(splitLines(string(data))))
	assert.Equal(t, fs.FileMode(0755), memfs.Mode("/out/main.py"))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func TestExecuteMissingSourceStopsRun(t *testing.T) {
	m := manifest.Default()
	memfs := testutil.NewMemoryFS()
	seedSources(m, memfs)
	// Drop a mid-manifest source
	require.NoError(t, memfs.Remove("/src/audio-agent-py.py"))

	ops, err := Plan(m, mustPaths(t))
	require.NoError(t, err)

	results, err := NewExecutor(memfs, false).Execute(ops)
	require.Error(t, err)
	assert.Equal(t, errors.ErrMissingSource, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "audio-agent-py.py")

	// The run stopped at the failing copy
	last := results[len(results)-1]
	assert.False(t, last.Success)
	assert.Equal(t, "/src/audio-agent-py.py", last.Operation.Source)

	// Entries before the missing one were staged, entries after were not
	assert.True(t, memfs.Exists("/out/agents/content_agent.py"))
	assert.False(t, memfs.Exists("/out/agents/visual_agent.py"))
	assert.False(t, memfs.Exists("/out/utils/common.py"))

	// The requirements file was never written
	assert.False(t, memfs.Exists("/out/requirements.txt"))
}

func TestExecutePermissionDenied(t *testing.T) {
	m := manifest.Default()
	memfs := testutil.NewMemoryFS()
	seedSources(m, memfs)
	memfs.WithError("/out/agents", fs.ErrPermission)

	ops, err := Plan(m, mustPaths(t))
	require.NoError(t, err)

	results, err := NewExecutor(memfs, false).Execute(ops)
	require.Error(t, err)
	assert.Equal(t, errors.ErrPermission, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "/out/agents")

	// Failed on the second operation, nothing was copied
	assert.Len(t, results, 2)
	assert.False(t, memfs.Exists("/out/main.py"))
}

func TestExecuteDryRun(t *testing.T) {
	m := manifest.Default()
	memfs := testutil.NewMemoryFS()
	seedSources(m, memfs)

	ops, err := Plan(m, mustPaths(t))
	require.NoError(t, err)

	results, err := NewExecutor(memfs, true).Execute(ops)
	require.NoError(t, err)
	require.Len(t, results, len(ops))

	for _, res := range results {
		assert.True(t, res.Success)
		assert.Contains(t, res.Message, "Would ")
	}

	// Nothing was created
	assert.False(t, memfs.Exists("/out"))
	assert.False(t, memfs.Exists("/out/main.py"))
	assert.False(t, memfs.Exists("/out/requirements.txt"))
}
