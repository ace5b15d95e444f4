// Package paramcheck rejects script parameters that carry characters with
// special meaning to PowerShell's own parser, or that exceed the length
// bounds. Parameters are delivered to the interpreter as discrete argv
// entries, so no shell is ever in the path; the denylist guards against
// the interpreter's grammar (command separators, subexpression syntax),
// not shell metacharacters. Parameters are never rewritten: any violation
// rejects the whole batch.
package paramcheck

import (
	"fmt"
	"strings"

	"github.com/mhelske/pslaunch/pkg/check"
)

const (
	// MaxParamLen bounds a single parameter.
	MaxParamLen = 1024
	// MaxTotalLen bounds the sum of all parameter lengths.
	MaxTotalLen = 8192
)

// DeniedChars is the fixed set of characters that unconditionally reject a
// parameter. Characters outside this set that are still meaningful to
// PowerShell pass through; that coverage gap is deliberate.
const DeniedChars = ";&|<>`$(){}[]\n\r"

// ParamError describes the first violation found in a parameter sequence.
type ParamError struct {
	Index  int    // position in the parameter sequence
	Param  string // offending parameter
	Char   rune   // offending character, 0 for length violations
	Reason string
}

func (e *ParamError) Error() string {
	return e.Reason
}

// Check validates an ordered parameter sequence. The sequence itself is
// never modified; passing the check means it is forwarded as-is.
type Check struct {
	Params []string
}

// Run executes the parameter checks in order, short-circuiting on the
// first violation. The aggregate bound accumulates across the whole
// sequence independently of the per-parameter checks.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("params: %d", len(c.Params)),
	}

	total := 0
	for i, param := range c.Params {
		if idx := strings.IndexAny(param, DeniedChars); idx >= 0 {
			ch := rune(param[idx]) // denied set is all ASCII
			err := &ParamError{
				Index:  i,
				Param:  param,
				Char:   ch,
				Reason: fmt.Sprintf("parameter %d contains forbidden character %q: %s", i, ch, param),
			}
			return result.Fail(err.Reason, err)
		}

		if len(param) > MaxParamLen {
			err := &ParamError{
				Index:  i,
				Param:  param,
				Reason: fmt.Sprintf("parameter %d too long: %d chars (max %d)", i, len(param), MaxParamLen),
			}
			return result.Fail(err.Reason, err)
		}

		total += len(param)
	}

	if total > MaxTotalLen {
		err := &ParamError{
			Index:  -1,
			Reason: fmt.Sprintf("total parameter length %d exceeds maximum %d", total, MaxTotalLen),
		}
		return result.Fail(err.Reason, err)
	}

	result.AddDetailf("total length: %d", total)
	result.Status = check.StatusOK
	return result
}
