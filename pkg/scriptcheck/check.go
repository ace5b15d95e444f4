// Package scriptcheck validates the script path before launch: the path
// must name an existing regular file and resolve to a canonical absolute
// form. The file is treated as opaque; its contents are never inspected.
//
// Validation and launch are separate steps, so a filesystem race can swap
// the file between the two. That TOCTOU window is an accepted limitation
// of existence checks, not something this package tries to close.
package scriptcheck

import (
	"errors"
	"fmt"
	"os"

	"github.com/mhelske/pslaunch/pkg/check"
)

var (
	ErrEmptyPath = errors.New("script path cannot be empty")
	ErrNotFound  = errors.New("script file not found")
	ErrNotAFile  = errors.New("script path is not a file")
)

// Check verifies a script path and resolves it to canonical absolute form.
type Check struct {
	Path string     // path to validate
	FS   FileSystem // injected for testing

	// Resolved holds the canonical absolute path after a successful Run.
	Resolved string
}

// Run executes the script path check. Order matters: the empty-path check
// never touches the filesystem, and type checks come before resolution so
// the failure names the actual problem.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("script: %s", c.Path),
	}

	if c.Path == "" {
		return result.Fail("script path cannot be empty", ErrEmptyPath)
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Fail(fmt.Sprintf("script file not found: %s", c.Path), fmt.Errorf("%w: %s", ErrNotFound, c.Path))
		}
		return result.Failf("stat failed: %v", err)
	}

	if !info.Mode().IsRegular() {
		return result.Fail(fmt.Sprintf("script path is not a file: %s", c.Path), fmt.Errorf("%w: %s", ErrNotAFile, c.Path))
	}

	resolved, err := c.FS.Canonicalize(c.Path)
	if err != nil {
		return result.Failf("failed to resolve script path: %v", err)
	}

	c.Resolved = resolved
	result.AddDetailf("resolved: %s", resolved)
	result.Status = check.StatusOK
	return result
}
