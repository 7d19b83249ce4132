package types

import "io/fs"

// FS abstracts the filesystem operations needed by the stager
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Permission operations
	Chmod(name string, mode fs.FileMode) error

	// Other operations
	Remove(name string) error

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}
