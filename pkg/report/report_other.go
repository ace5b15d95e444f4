//go:build !windows

package report

// NewPlatform returns the reporter for this platform.
func NewPlatform() Reporter {
	return &StderrReporter{}
}
