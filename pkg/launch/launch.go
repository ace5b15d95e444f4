// Package launch runs the validation-and-invocation pipeline: script path
// validation, parameter sanitization, optional integrity verification,
// interpreter location, and the single process launch. Every stage
// consumes the previous stage's output by value; any failure
// short-circuits the pipeline with a stage-tagged error and nothing is
// retried.
package launch

import (
	"fmt"

	"github.com/mhelske/pslaunch/pkg/integrity"
	"github.com/mhelske/pslaunch/pkg/interpcheck"
	"github.com/mhelske/pslaunch/pkg/paramcheck"
	"github.com/mhelske/pslaunch/pkg/psexec"
	"github.com/mhelske/pslaunch/pkg/scriptcheck"
)

// Stage identifies the pipeline stage that failed.
type Stage string

const (
	StageScript      Stage = "script"
	StageParams      Stage = "params"
	StageIntegrity   Stage = "integrity"
	StageInterpreter Stage = "interpreter"
	StageLaunch      Stage = "launch"
)

// Error is a stage-tagged pipeline failure. Title is suitable for the
// error-reporting collaborator.
type Error struct {
	Stage Stage
	Title string
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Request is a validated-argument launch request, as produced by args.Parse.
type Request struct {
	ScriptPath string
	Params     []string
}

// Options carries the pipeline collaborators. Zero values select the real
// implementations and the platform's fixed interpreter location.
type Options struct {
	InterpreterPath string
	ScriptFS        scriptcheck.FileSystem
	InterpFS        interpcheck.FileSystem
	Opener          integrity.FileOpener
	Runner          psexec.Runner
}

// Result is the outcome of a completed launch.
type Result struct {
	ExitCode int
	Stderr   string
}

func (o *Options) fillDefaults() {
	if o.InterpreterPath == "" {
		o.InterpreterPath = interpcheck.DefaultPath()
	}
	if o.ScriptFS == nil {
		o.ScriptFS = &scriptcheck.RealFileSystem{}
	}
	if o.InterpFS == nil {
		o.InterpFS = &interpcheck.RealFileSystem{}
	}
	if o.Opener == nil {
		o.Opener = &integrity.RealFileOpener{}
	}
	if o.Runner == nil {
		o.Runner = &psexec.RealRunner{}
	}
}

// Run executes the pipeline for a single request. On success the result
// carries the interpreter's exit code verbatim. A child that exits
// non-zero with captured stderr is treated as a launch failure so its
// diagnostics reach the operator; non-zero with empty stderr passes
// through silently.
func Run(req Request, opts Options) (Result, error) {
	opts.fillDefaults()

	sc := &scriptcheck.Check{Path: req.ScriptPath, FS: opts.ScriptFS}
	if res := sc.Run(); !res.OK() {
		return Result{}, &Error{Stage: StageScript, Title: "Script Validation Failed", Err: res.Err}
	}

	pc := &paramcheck.Check{Params: req.Params}
	if res := pc.Run(); !res.OK() {
		return Result{}, &Error{Stage: StageParams, Title: "Parameter Validation Failed", Err: res.Err}
	}

	ic := &integrity.Check{Script: sc.Resolved, Opener: opts.Opener}
	if res := ic.Run(); !res.OK() {
		return Result{}, &Error{Stage: StageIntegrity, Title: "Integrity Check Failed", Err: res.Err}
	}

	loc := &interpcheck.Check{Path: opts.InterpreterPath, FS: opts.InterpFS}
	if res := loc.Run(); !res.OK() {
		return Result{}, &Error{Stage: StageInterpreter, Title: "PowerShell Not Found", Err: res.Err}
	}

	code, stderr, err := opts.Runner.Run(opts.InterpreterPath, psexec.Argv(sc.Resolved, req.Params))
	if err != nil {
		return Result{}, &Error{Stage: StageLaunch, Title: "Execution Failed", Err: err}
	}
	if code != 0 && stderr != "" {
		return Result{}, &Error{
			Stage: StageLaunch,
			Title: "Execution Failed",
			Err:   fmt.Errorf("interpreter exited with code %d: %s", code, stderr),
		}
	}

	return Result{ExitCode: code, Stderr: stderr}, nil
}
