package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMem is returned when the token slice passed to Parse is full.  It
	// is not fatal: call Parse again with a bigger slice that starts with
	// the same tokens.
	ErrNoMem = errors.New("not enough tokens")

	ErrInvalid = errors.New("invalid character")
	ErrPartial = errors.New("unexpected end of JSON input")
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// A SyntaxError records where in the input the tokenizer gave up.
type SyntaxError struct {
	Err    error
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(err error, offset int) *SyntaxError {
	return &SyntaxError{Err: err, Offset: offset}
}
