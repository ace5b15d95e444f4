//go:build !windows

package interpcheck

// DefaultPath returns no location: the launcher targets Windows
// PowerShell only and other platforms are gated off at startup.
func DefaultPath() string {
	return ""
}

// Supported reports whether this platform carries a trusted interpreter.
func Supported() bool {
	return false
}
