//go:build windows

package interpcheck

// DefaultPath returns the fixed system location of Windows PowerShell.
// A constant path is used instead of a PATH lookup so that a manipulated
// search order cannot substitute another binary.
func DefaultPath() string {
	return `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`
}

// Supported reports whether this platform carries a trusted interpreter.
func Supported() bool {
	return true
}
