package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrOrder reports a model order below 1.
	ErrOrder = errors.New("markov: order must be at least 1")

	// ErrSequenceLength reports a constrained sequence length outside
	// the supported range.
	ErrSequenceLength = errors.New("markov: sequence length out of range")

	// ErrConstraintLength reports constraint lists whose lengths do not
	// match the model's sequence length.
	ErrConstraintLength = errors.New("markov: constraint list length must equal sequence length")

	// ErrBadToken reports a corpus token without a surface:hidden
	// separator.
	ErrBadToken = errors.New(`markov: malformed token, want "surface:hidden"`)
)

// LookupError reports a probability query over a context/target pair
// that is absent from a distribution. Pruning legitimately removes
// states from constrained models, so callers need to tell an undefined
// query apart from a zero probability; a zero is a valid answer, a
// LookupError is not one.
type LookupError struct {
	Table    string // "hidden" or "observed"
	Position int    // sequence position for positional models, -1 otherwise
	Context  string
	Target   string
}

func (e *LookupError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("markov: no %s probability at position %d for %q -> %q",
			e.Table, e.Position, e.Context, e.Target)
	}
	return fmt.Sprintf("markov: no %s probability for %q -> %q", e.Table, e.Context, e.Target)
}
