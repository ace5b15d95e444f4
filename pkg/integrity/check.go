// Package integrity verifies an optional checksum sidecar before a script
// is launched. If "<script>.sha256" exists next to the script, it must
// contain a GNU coreutils style line ("<hex>  <filename>") whose SHA-256
// matches the script's content; otherwise the launch is refused. A missing
// sidecar skips the stage entirely.
package integrity

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhelske/pslaunch/pkg/check"
)

// ErrMismatch indicates the script content does not match its sidecar hash.
var ErrMismatch = errors.New("checksum mismatch")

// SidecarSuffix is appended to the script path to locate its checksum file.
const SidecarSuffix = ".sha256"

// FileOpener abstracts file access for testability.
type FileOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// RealFileOpener implements FileOpener using the real filesystem.
type RealFileOpener struct{}

func (r *RealFileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Check verifies a script against its checksum sidecar, when one exists.
type Check struct {
	Script string     // resolved script path
	Opener FileOpener // injected for testing
}

// Run executes the integrity check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("integrity: %s", c.Script),
	}

	sidecar := c.Script + SidecarSuffix
	sf, err := c.Opener.Open(sidecar)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddDetail("no checksum sidecar, skipped")
			result.Status = check.StatusOK
			return result
		}
		return result.Failf("failed to open checksum sidecar: %v", err)
	}
	defer func() { _ = sf.Close() }()

	expected, err := parseSidecar(sf, filepath.Base(c.Script), c.Script)
	if err != nil {
		return result.Failf("invalid checksum sidecar: %v", err)
	}

	f, err := c.Opener.Open(c.Script)
	if err != nil {
		return result.Failf("failed to open script: %v", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return result.Failf("failed to hash script: %v", err)
	}
	actual := hex.EncodeToString(h.Sum(nil))

	if actual != expected {
		return result.Fail(
			fmt.Sprintf("checksum mismatch\n       expected: %s\n       actual:   %s", expected, actual),
			fmt.Errorf("%w for %s", ErrMismatch, c.Script))
	}

	result.AddDetailf("sha256: %s", actual)
	result.Status = check.StatusOK
	return result
}

// parseSidecar scans GNU coreutils style lines for an entry naming the
// script by basename or full path and returns its lowercase hex hash.
func parseSidecar(r io.Reader, targetFile, fullPath string) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		hashValue := strings.ToLower(parts[0])
		filename := strings.TrimPrefix(parts[len(parts)-1], "*")
		if filename != targetFile && filename != fullPath {
			continue
		}

		if _, err := hex.DecodeString(hashValue); err != nil || len(hashValue) != sha256.Size*2 {
			return "", fmt.Errorf("entry for %q is not a valid SHA-256 hash", filename)
		}
		return hashValue, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no entry for %q", targetFile)
}
