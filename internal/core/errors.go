package core

import "fmt"

// Kind classifies the errors this package and internal/strategy can raise,
// matching the taxonomy the deduction core promises its callers.
type Kind string

const (
	// KindInvalidInput marks a malformed board string or persisted record.
	KindInvalidInput Kind = "invalid_input"
	// KindInvalidAssignment marks a SetValue applied to a digit that is not
	// in the cell's hopeful set, or that has been eliminated.
	KindInvalidAssignment Kind = "invalid_assignment"
	// KindChainInconsistency marks a Chain merge that would require a
	// member to hold both colors at once.
	KindChainInconsistency Kind = "chain_inconsistency"
	// KindStrategyArgument marks a strategy invoked with an unsupported
	// group kind.
	KindStrategyArgument Kind = "strategy_argument"
)

// Error is the error type returned across this module. Callers that need
// to branch on the failure class should compare Kind, not the message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewStrategyArgumentError reports a strategy invoked with a group kind it
// does not support (e.g. X-Wing given a block).
func NewStrategyArgumentError(format string, args ...any) *Error {
	return newError(KindStrategyArgument, format, args...)
}
