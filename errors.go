package main

import (
	"errors"
	"fmt"
)

// Error kinds raised while executing a program. Any error returned by
// Execute may be tested against these with errors.Is.
var (
	ErrStackUnderflow         = errors.New("stack-underflow")
	ErrStackOverflow          = errors.New("stack-overflow")
	ErrDivisionByZero         = errors.New("division-by-zero")
	ErrUnknownToken           = errors.New("?")
	ErrInvalidWordName        = errors.New("invalid-word")
	ErrUnterminatedDefinition = errors.New("unterminated-definition")
	ErrUnterminatedString     = errors.New("unterminated-string")
	ErrMissingThen            = errors.New("missing-then")
	ErrRecursionLimit         = errors.New("recursion-limit-exceeded")
)

// tokenError annotates an error with the token whose execution raised it.
type tokenError struct {
	token string
	err   error
}

func (te tokenError) Error() string {
	if te.err == ErrUnknownToken {
		return fmt.Sprintf("%v %v", te.token, te.err)
	}
	return fmt.Sprintf("%v: %v", te.token, te.err)
}

func (te tokenError) Unwrap() error { return te.err }

// withToken wraps err with token context, unless it already has some; the
// innermost token is the most useful one to report.
func withToken(token string, err error) error {
	if err == nil {
		return nil
	}
	var te tokenError
	if errors.As(err, &te) {
		return err
	}
	return tokenError{token, err}
}
