package scriptcheck

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Canonicalize(name string) (string, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Canonicalize resolves a path to its absolute, symlink-free form with all
// "." and ".." segments eliminated.
func (r *RealFileSystem) Canonicalize(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
