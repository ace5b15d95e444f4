package check

// Checker is implemented by all validation stages of the launch pipeline.
// Each stage validates one aspect of a launch request and returns a Result
// indicating success or failure.
//
// Implementations:
//   - scriptcheck.Check: verifies the script path and resolves it
//   - paramcheck.Check: rejects unsafe or oversized parameters
//   - integrity.Check: verifies an optional sidecar checksum
//   - interpcheck.Check: confirms the trusted interpreter exists
type Checker interface {
	Run() Result
}
