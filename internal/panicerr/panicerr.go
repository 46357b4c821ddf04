// Package panicerr turns panics and goroutine exits into ordinary errors.
package panicerr

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Error is a panic recovered by Recover.
type Error struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *Error) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("panicked: %v", pe.Value)
	}
	return fmt.Sprintf("%v panicked: %v", pe.Name, pe.Value)
}

// Format appends the panic stack under %+v.
func (pe *Error) Format(f fmt.State, c rune) {
	io.WriteString(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\npanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

type exited string

func (name exited) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// Recover runs f in its own goroutine and returns its error. A panic in f
// comes back as an *Error; a runtime.Goexit as a plain error.
func Recover(name string, f func() error) error {
	result := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			if e := recover(); e != nil {
				result <- &Error{Name: name, Value: e, Stack: debug.Stack()}
			} else {
				result <- exited(name)
			}
		}()
		err := f()
		returned = true
		result <- err
	}()
	return <-result
}
