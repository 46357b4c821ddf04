package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/tinyforth/internal/flushio"
)

// DefaultMaxDepth bounds how deeply word calls and conditional branches may
// nest before execution fails with ErrRecursionLimit. The limit is always
// enforced; a Go stack overflow cannot be recovered.
const DefaultMaxDepth = 1024

// VM holds all state for one program run: the operand stack, the word
// dictionary, and the console that output words write to.
type VM struct {
	logging

	stack Stack
	dict  Dictionary
	out   flushio.WriteFlusher

	depth    int
	maxDepth int
}

// exec runs tokens from cur until it is exhausted or a token fails; the first
// failure aborts the rest, leaving any changes already made in place.
func (vm *VM) exec(cur *Cursor) error {
	for {
		token, ok := cur.Next()
		if !ok {
			return nil
		}
		if err := vm.step(token, cur); err != nil {
			return withToken(token, err)
		}
	}
}

// run executes a nested token sequence, like a word body or a conditional
// branch, one level deeper than the caller.
func (vm *VM) run(tokens []string) error {
	if vm.depth >= vm.maxDepth {
		return ErrRecursionLimit
	}
	vm.depth++
	defer func() { vm.depth-- }()
	return vm.exec(NewCursor(tokens))
}

func (vm *VM) step(token string, cur *Cursor) error {
	word := strings.ToUpper(token)
	if vm.logfn != nil {
		vm.logf(strings.Repeat(">", vm.depth+1), "%v -- s:%v", token, vm.stack.cells)
	}

	if word == ":" {
		return vm.define(cur)
	}

	if body, defined := vm.dict.Lookup(word); defined {
		return vm.run(body)
	}

	if prim, ok := primitives[word]; ok {
		return prim(vm, cur)
	}

	val, err := parseLiteral(word)
	if err != nil {
		return ErrUnknownToken
	}
	return vm.stack.Push(val)
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
