package interpcheck

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/mhelske/pslaunch/pkg/check"
)

type mockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) { return m.StatFunc(name) }

type mockFileInfo struct{}

func (m *mockFileInfo) Name() string       { return "powershell.exe" }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return 0o755 }
func (m *mockFileInfo) IsDir() bool        { return false }
func (m *mockFileInfo) Sys() any           { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Unix(0, 0) }

func TestCheck_Exists(t *testing.T) {
	c := &Check{
		Path: `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`,
		FS:   &mockFileSystem{StatFunc: func(string) (fs.FileInfo, error) { return &mockFileInfo{}, nil }},
	}
	if res := c.Run(); res.Status != check.StatusOK {
		t.Errorf("Run() failed: %v", res.Err)
	}
}

func TestCheck_Missing(t *testing.T) {
	c := &Check{
		Path: `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`,
		FS:   &mockFileSystem{StatFunc: func(string) (fs.FileInfo, error) { return nil, os.ErrNotExist }},
	}
	res := c.Run()

	if res.Status != check.StatusFail {
		t.Fatal("Run() passed, want failure")
	}
	if !errors.Is(res.Err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", res.Err)
	}
}

func TestCheck_NoPlatformLocation(t *testing.T) {
	c := &Check{Path: "", FS: &RealFileSystem{}}
	res := c.Run()

	if !errors.Is(res.Err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", res.Err)
	}
}

func TestDefaultPath_MatchesSupport(t *testing.T) {
	// Supported platforms carry a fixed location; others carry none.
	if Supported() != (DefaultPath() != "") {
		t.Errorf("Supported() = %v but DefaultPath() = %q", Supported(), DefaultPath())
	}
}
