package grammar

import "fmt"

type CompileError struct {
	message string
}

func newCompileError(message string) *CompileError {
	return &CompileError{
		message: message,
	}
}

func (e *CompileError) Error() string {
	return e.message
}

var (
	ErrUndecidableRule = newCompileError("a rule can invoke itself without consuming any input")

	// ErrAlwaysFails is reserved for rules that can never match any input.
	// No detection pass raises it yet.
	ErrAlwaysFails = newCompileError("a rule can never match any input")
)

// RuleError attaches the offending rule's name to a compilation error.
type RuleError struct {
	Cause error
	Rule  string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %v: %v", e.Rule, e.Cause)
}

func (e *RuleError) Unwrap() error {
	return e.Cause
}
