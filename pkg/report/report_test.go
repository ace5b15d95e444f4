package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestStderrReporter_WritesTitleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r := &StderrReporter{Out: &buf}

	r.Error("Script Validation Failed", "script file not found: test.ps1")

	out := buf.String()
	if !strings.Contains(out, "Script Validation Failed") {
		t.Errorf("output %q missing title", out)
	}
	if !strings.Contains(out, "script file not found: test.ps1") {
		t.Errorf("output %q missing message", out)
	}
}

func TestNewPlatform_ReturnsReporter(t *testing.T) {
	if NewPlatform() == nil {
		t.Fatal("NewPlatform() = nil")
	}
}
