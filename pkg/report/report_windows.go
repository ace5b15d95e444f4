//go:build windows

package report

import "golang.org/x/sys/windows"

const (
	mbOK        = 0x00000000
	mbIconError = 0x00000010
)

// DialogReporter raises a blocking modal error dialog, falling back to
// stderr when the dialog cannot be shown.
type DialogReporter struct {
	fallback StderrReporter
}

// Error shows the failure in a message box.
func (r *DialogReporter) Error(title, message string) {
	text, terr := windows.UTF16PtrFromString(message)
	caption, cerr := windows.UTF16PtrFromString(title)
	if terr != nil || cerr != nil {
		r.fallback.Error(title, message)
		return
	}
	if _, err := windows.MessageBox(0, text, caption, mbOK|mbIconError); err != nil {
		r.fallback.Error(title, message)
	}
}

// NewPlatform returns the reporter for this platform.
func NewPlatform() Reporter {
	return &DialogReporter{}
}
