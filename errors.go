package forth

import (
	"errors"
	"fmt"
)

// Failures abort the remainder of the current line and propagate to the
// caller unchanged; there is no local recovery anywhere in the core.  The
// stack and store are left in whatever partial state preceded the failure.
var (
	// ErrStackUnderflow: an operation needed more operands than were present.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrInvalidOperands: operands were present but of the wrong variant, or
	// otherwise semantically invalid.  Errors of this kind may carry extra
	// context and are matched with errors.Is.
	ErrInvalidOperands = errors.New("invalid operands")
)

// UndefinedWordError reports a name token that resolved to neither a native
// nor a user-defined word.
type UndefinedWordError string

func (w UndefinedWordError) Error() string { return fmt.Sprintf("undefined word %q", string(w)) }

// SyntaxError reports source text that does not match the grammar, with the
// rune offset into the offending line.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("syntax error at %v: %v", e.Offset, e.Msg) }
