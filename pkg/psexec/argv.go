// Package psexec starts the trusted interpreter as a direct child process.
// Arguments are always passed as a discrete argv vector, never joined into
// a command string and never routed through a shell, so argument boundaries
// cannot be confused by an attacker-controlled value.
package psexec

// hardenedFlags is the fixed flag sequence prepended before the script
// path. Order is part of the wire contract with the interpreter and is
// not configurable.
var hardenedFlags = []string{
	"-NonInteractive",
	"-NoProfile",
	"-ExecutionPolicy", "Bypass",
	"-File",
}

// Argv builds the interpreter's argument vector: the hardened flags, the
// validated script path, then each sanitized parameter as one entry.
func Argv(script string, params []string) []string {
	argv := make([]string, 0, len(hardenedFlags)+1+len(params))
	argv = append(argv, hardenedFlags...)
	argv = append(argv, script)
	argv = append(argv, params...)
	return argv
}
