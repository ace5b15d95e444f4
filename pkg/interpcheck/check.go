// Package interpcheck locates the trusted PowerShell interpreter at a
// fixed, non-configurable filesystem location. PATH and any other
// environment-controlled search order are never consulted, so a
// manipulated lookup order cannot substitute a different binary.
package interpcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mhelske/pslaunch/pkg/check"
)

// ErrNotFound indicates the trusted interpreter is missing at its fixed
// location. This is an installation fault, not a user input fault.
var ErrNotFound = errors.New("interpreter not found")

// FileSystem abstracts the existence check for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Check confirms the interpreter exists at its fixed path. Existence is
// verified at call time, immediately before launch.
type Check struct {
	Path string     // fixed interpreter location; empty means no location on this platform
	FS   FileSystem // injected for testing
}

// Run executes the interpreter check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("interpreter: %s", c.Path),
	}

	if c.Path == "" {
		return result.Fail("no trusted interpreter location on this platform",
			fmt.Errorf("%w: no fixed location on this platform", ErrNotFound))
	}

	if _, err := c.FS.Stat(c.Path); err != nil {
		if os.IsNotExist(err) {
			return result.Fail(fmt.Sprintf("interpreter not found at: %s", c.Path),
				fmt.Errorf("%w at %s", ErrNotFound, c.Path))
		}
		return result.Failf("stat failed: %v", err)
	}

	result.Status = check.StatusOK
	return result
}
