package main

import (
	"io"

	"github.com/jcorbin/tinyforth/internal/panicerr"
)

// New creates a VM with an empty stack and dictionary.
func New(opts ...VMOption) *VM {
	var vm VM
	VMOptions(defaults...).apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Execute runs program source text against the VM's stack and dictionary,
// which persist across calls. Output is flushed before returning, even after
// a failure.
func (vm *VM) Execute(src string) error {
	err := panicerr.Recover("forth", func() error {
		return vm.exec(NewCursor(Tokenize(src)))
	})
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Stack returns the VM's operand stack.
func (vm *VM) Stack() *Stack { return &vm.stack }

// Dictionary returns the VM's word dictionary.
func (vm *VM) Dictionary() *Dictionary { return &vm.dict }

func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }
func WithStackSize(size int) VMOption { return withStackSize(size) }
func WithMaxDepth(depth int) VMOption { return withMaxDepth(depth) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
