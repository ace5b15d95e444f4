package main

import (
	"errors"

	"github.com/mhelske/pslaunch/pkg/args"
	"github.com/mhelske/pslaunch/pkg/launch"
	"github.com/mhelske/pslaunch/pkg/report"
)

// runPipeline executes the full launcher flow for one invocation and
// returns the process exit code. The platform gate comes first: hosts
// without the trusted interpreter fail fast instead of attempting a
// partial run.
func runPipeline(argv []string, supported bool, rep report.Reporter, opts launch.Options) int {
	if !supported {
		rep.Error("Unsupported Platform", "this launcher requires Windows PowerShell and runs only on Windows")
		return 1
	}

	req, err := args.Parse(argv)
	if err != nil {
		rep.Error("Invalid Arguments", err.Error()+"\n\n"+usageText())
		return 1
	}

	result, err := launch.Run(launch.Request{ScriptPath: req.ScriptPath, Params: req.Params}, opts)
	if err != nil {
		var lerr *launch.Error
		if errors.As(err, &lerr) {
			rep.Error(lerr.Title, lerr.Err.Error())
		} else {
			rep.Error("Execution Failed", err.Error())
		}
		return 1
	}

	return result.ExitCode
}
