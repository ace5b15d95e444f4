// Package args splits a raw invocation into a script path and trailing
// parameters. The surface is deliberately rigid: token 1 must be the
// -Script flag (any casing), token 2 the script path, everything after
// is forwarded untouched to later stages.
package args

import "strings"

// ScriptFlag is the only flag the launcher accepts, matched
// case-insensitively at position 1.
const ScriptFlag = "-Script"

// Request is a parsed invocation.
type Request struct {
	ScriptPath string
	Params     []string
}

// UsageError indicates a malformed invocation. The caller is expected to
// render the fixed usage text alongside it.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// Parse validates the full argv (program name included) and extracts the
// script path and parameters, preserving parameter order.
func Parse(argv []string) (*Request, error) {
	if len(argv) < 3 {
		return nil, &UsageError{Reason: "missing -Script flag or script path"}
	}
	if !strings.EqualFold(argv[1], ScriptFlag) {
		return nil, &UsageError{Reason: "unknown flag " + argv[1] + ", expected " + ScriptFlag}
	}

	return &Request{
		ScriptPath: argv[2],
		Params:     append([]string{}, argv[3:]...),
	}, nil
}
