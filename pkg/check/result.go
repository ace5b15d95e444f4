package check

// Status represents the outcome of a validation stage.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single validation stage.
type Result struct {
	Name    string   // e.g., "script: C:\scripts\test.ps1"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the stage passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
