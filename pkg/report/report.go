// Package report surfaces launcher failures to the operator. The core
// pipeline only ever needs a (title, message) collaborator; the default
// implementation writes to stderr, and Windows builds additionally raise
// a blocking modal dialog.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, reset = "", ""
	}
}

// Reporter accepts a short title and a descriptive message for a failure.
type Reporter interface {
	Error(title, message string)
}

// StderrReporter writes failures to a stream, colored when supported.
type StderrReporter struct {
	Out io.Writer // defaults to os.Stderr
}

// Error prints the failure with a colored title prefix.
func (r *StderrReporter) Error(title, message string) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "%s[%s]%s %s\n", red, title, reset, message)
}
