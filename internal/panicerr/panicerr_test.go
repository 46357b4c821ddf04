package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/tinyforth/internal/panicerr"
)

func TestRecover(t *testing.T) {
	for _, tc := range []struct {
		name    string
		err     string
		wraps   string
		fun     func() error
		isPanic bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errors.New("bang") },
		},
		{
			name:    "",
			err:     "panicked: shrug",
			wraps:   "shrug",
			isPanic: true,
			fun:     func() error { panic(errors.New("shrug")) },
		},
		{
			name:    "panic err",
			err:     "panic err panicked: bang",
			wraps:   "bang",
			isPanic: true,
			fun:     func() error { panic(errors.New("bang")) },
		},
		{
			name:    "hello panic",
			err:     "hello panic panicked: hello",
			isPanic: true,
			fun:     func() error { panic("hello") },
		},
		{
			name:    "index panic",
			err:     "index panic panicked: runtime error: index out of range [1] with length 0",
			isPanic: true,
			fun:     func() error { _ = ([]int)(nil)[1]; return nil },
		},
		{
			name: "exit",
			err:  "exit called runtime.Goexit",
			fun:  func() error { runtime.Goexit(); return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)
			if tc.wraps != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
			}
			var pe *panicerr.Error
			if assert.Equal(t, tc.isPanic, errors.As(err, &pe), "expected recovered panic") && tc.isPanic {
				assert.NotEmpty(t, pe.Stack, "expected a stack trace")
				assert.Equal(t, tc.name, pe.Name)
			}
		})
	}
}

func TestError_Format(t *testing.T) {
	err := panicerr.Recover("", func() error {
		panic("nope")
	})
	var pe *panicerr.Error
	require.True(t, errors.As(err, &pe), "must have a recovered panic")

	assert.Equal(t, "panicked: nope", fmt.Sprintf("%v", err))
	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(verbose, "panicked: nope\npanic stack: "), "expected message then stack")
	assert.True(t, strings.HasSuffix(verbose, string(pe.Stack)), "expected verbose format to end with the stack")
}
