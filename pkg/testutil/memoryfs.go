package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/evanmartell/shortstage/pkg/types"
)

var _ types.FS = (*MemoryFS)(nil)

// MemoryFS implements types.FS with in-memory storage, for executor and
// command tests that should not touch the real filesystem.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode

	// Error injection: any operation touching one of these paths fails
	// with the mapped error.
	errorPaths map[string]error
}

// fileNode represents a file or directory in memory
type fileNode struct {
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem with a root directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// WithError injects an error for any operation on the given path.
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[normalize(path)] = err
	return m
}

// AddFile seeds a file, creating parent directories as needed.
func (m *MemoryFS) AddFile(path string, content []byte) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = normalize(path)
	m.mkdirAllLocked(filepath.Dir(path))
	m.nodes[path] = &fileNode{mode: 0644, modTime: time.Now(), content: append([]byte(nil), content...)}
	return m
}

func normalize(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) checkError(op, path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name = normalize(name)
	if err := m.checkError("stat", name); err != nil {
		return nil, err
	}
	node, ok := m.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &fileInfo{name: filepath.Base(name), node: node}, nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	return m.Stat(name)
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name = normalize(name)
	if err := m.checkError("open", name); err != nil {
		return nil, err
	}
	node, ok := m.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return append([]byte(nil), node.content...), nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = normalize(name)
	if err := m.checkError("write", name); err != nil {
		return err
	}
	parent, ok := m.nodes[filepath.Dir(name)]
	if !ok || !parent.isDir {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	if node, exists := m.nodes[name]; exists {
		// Overwrite keeps the existing mode, like os.WriteFile
		node.content = append([]byte(nil), data...)
		node.modTime = time.Now()
		return nil
	}
	m.nodes[name] = &fileNode{mode: perm, modTime: time.Now(), content: append([]byte(nil), data...)}
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = normalize(path)
	if err := m.checkError("mkdir", path); err != nil {
		return err
	}
	if node, ok := m.nodes[path]; ok {
		if !node.isDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
		}
		return nil
	}
	m.mkdirAllLocked(path)
	return nil
}

func (m *MemoryFS) mkdirAllLocked(path string) {
	for _, p := range parents(path) {
		if _, ok := m.nodes[p]; !ok {
			m.nodes[p] = &fileNode{mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true}
		}
	}
}

// parents returns the path and all its ancestors, shallowest first.
func parents(path string) []string {
	var chain []string
	for path != "/" && path != "." {
		chain = append([]string{path}, chain...)
		path = filepath.Dir(path)
	}
	return chain
}

func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = normalize(name)
	if err := m.checkError("chmod", name); err != nil {
		return err
	}
	node, ok := m.nodes[name]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	node.mode = mode
	return nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = normalize(name)
	if err := m.checkError("remove", name); err != nil {
		return err
	}
	if _, ok := m.nodes[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.nodes, name)
	return nil
}

// Exists reports whether a path is present, for test assertions.
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.nodes[normalize(path)]
	return ok
}

// Mode returns the mode bits of a path, for test assertions.
func (m *MemoryFS) Mode(path string) fs.FileMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if node, ok := m.nodes[normalize(path)]; ok {
		return node.mode
	}
	return 0
}

// fileInfo adapts a fileNode to fs.FileInfo
type fileInfo struct {
	name string
	node *fileNode
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() fs.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return nil }
