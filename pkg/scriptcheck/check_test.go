package scriptcheck

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhelske/pslaunch/pkg/check"
)

type mockFileSystem struct {
	StatFunc         func(name string) (fs.FileInfo, error)
	CanonicalizeFunc func(name string) (string, error)
}

func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) { return m.StatFunc(name) }
func (m *mockFileSystem) Canonicalize(name string) (string, error) {
	if m.CanonicalizeFunc != nil {
		return m.CanonicalizeFunc(name)
	}
	return name, nil
}

type mockFileInfo struct {
	NameValue string
	ModeValue fs.FileMode
}

func (m *mockFileInfo) Name() string       { return m.NameValue }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *mockFileInfo) IsDir() bool        { return m.ModeValue.IsDir() }
func (m *mockFileInfo) Sys() any           { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Unix(0, 0) }

func statFile() func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) {
		return &mockFileInfo{NameValue: "test.ps1", ModeValue: 0o644}, nil
	}
}

func statDir() func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) {
		return &mockFileInfo{NameValue: "scripts", ModeValue: 0o755 | fs.ModeDir}, nil
	}
}

func TestCheck_EmptyPathNeverTouchesFilesystem(t *testing.T) {
	// A nil FS would panic on any filesystem access.
	c := &Check{Path: "", FS: nil}
	res := c.Run()

	assert.Equal(t, check.StatusFail, res.Status)
	assert.ErrorIs(t, res.Err, ErrEmptyPath)
}

func TestCheck_NotFound(t *testing.T) {
	c := &Check{
		Path: `C:\scripts\missing.ps1`,
		FS:   &mockFileSystem{StatFunc: func(string) (fs.FileInfo, error) { return nil, os.ErrNotExist }},
	}
	res := c.Run()

	assert.Equal(t, check.StatusFail, res.Status)
	assert.ErrorIs(t, res.Err, ErrNotFound)
}

func TestCheck_DirectoryRejected(t *testing.T) {
	c := &Check{Path: `C:\scripts`, FS: &mockFileSystem{StatFunc: statDir()}}
	res := c.Run()

	assert.Equal(t, check.StatusFail, res.Status)
	assert.ErrorIs(t, res.Err, ErrNotAFile)
}

func TestCheck_StatError(t *testing.T) {
	c := &Check{
		Path: `C:\scripts\test.ps1`,
		FS:   &mockFileSystem{StatFunc: func(string) (fs.FileInfo, error) { return nil, errors.New("I/O error") }},
	}
	res := c.Run()

	assert.Equal(t, check.StatusFail, res.Status)
}

func TestCheck_CanonicalizeFailure(t *testing.T) {
	c := &Check{
		Path: "test.ps1",
		FS: &mockFileSystem{
			StatFunc:         statFile(),
			CanonicalizeFunc: func(string) (string, error) { return "", errors.New("permission denied") },
		},
	}
	res := c.Run()

	assert.Equal(t, check.StatusFail, res.Status)
	assert.Empty(t, c.Resolved)
}

func TestCheck_ResolvesToCanonicalForm(t *testing.T) {
	c := &Check{
		Path: "../scripts/test.ps1",
		FS: &mockFileSystem{
			StatFunc:         statFile(),
			CanonicalizeFunc: func(string) (string, error) { return `C:\scripts\test.ps1`, nil },
		},
	}
	res := c.Run()

	require.Equal(t, check.StatusOK, res.Status)
	assert.Equal(t, `C:\scripts\test.ps1`, c.Resolved)
}

func TestRealFileSystem_Canonicalize(t *testing.T) {
	dir := t.TempDir()
	f, err := os.CreateTemp(dir, "script-*.ps1")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	fsys := &RealFileSystem{}
	resolved, err := fsys.Canonicalize(f.Name())
	require.NoError(t, err)

	info, err := fsys.Stat(resolved)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}
