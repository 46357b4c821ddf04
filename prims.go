package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/tinyforth/internal/runeio"
)

// primitive implements a builtin word. Only words that parse further input,
// like IF and .", make any use of the cursor.
type primitive func(vm *VM, cur *Cursor) error

var primitives map[string]primitive

func init() {
	primitives = map[string]primitive{
		// arithmetic
		"+": binaryOp(func(b, a int16) (int16, error) { return b + a, nil }),
		"-": binaryOp(func(b, a int16) (int16, error) { return b - a, nil }),
		"*": binaryOp(func(b, a int16) (int16, error) { return b * a, nil }),
		"/": binaryOp(div),

		// boolean and comparison
		"=":   binaryOp(func(b, a int16) (int16, error) { return boolInt(b == a), nil }),
		"<":   binaryOp(func(b, a int16) (int16, error) { return boolInt(b < a), nil }),
		">":   binaryOp(func(b, a int16) (int16, error) { return boolInt(b > a), nil }),
		"AND": binaryOp(func(b, a int16) (int16, error) { return boolInt(b != 0 && a != 0), nil }),
		"OR":  binaryOp(func(b, a int16) (int16, error) { return boolInt(b != 0 || a != 0), nil }),
		"NOT": unaryOp(func(a int16) int16 { return boolInt(a == 0) }),

		// stack manipulation
		"DUP":  stackOp(dup),
		"DROP": stackOp(drop),
		"SWAP": stackOp(swap),
		"OVER": stackOp(over),
		"ROT":  stackOp(rot),

		// output
		"CR":   (*VM).cr,
		".":    (*VM).dot,
		"EMIT": (*VM).emit,
		`."`:   (*VM).dotQuote,

		// control
		"IF": (*VM).ifThen,
	}
}

func boolInt(b bool) int16 {
	if b {
		return -1
	}
	return 0
}

func div(b, a int16) (int16, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return b / a, nil
}

// binaryOp pops a then b, pushing the result of op(b, a). Operands stay
// consumed if either popping or op fails.
func binaryOp(op func(b, a int16) (int16, error)) primitive {
	return func(vm *VM, _ *Cursor) error {
		b, a, err := vm.stack.pop2()
		if err != nil {
			return err
		}
		val, err := op(b, a)
		if err != nil {
			return err
		}
		return vm.stack.Push(val)
	}
}

func unaryOp(op func(a int16) int16) primitive {
	return func(vm *VM, _ *Cursor) error {
		a, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.stack.Push(op(a))
	}
}

func stackOp(op func(st *Stack) error) primitive {
	return func(vm *VM, _ *Cursor) error { return op(&vm.stack) }
}

// ( a -- a a )
func dup(st *Stack) error {
	a, err := st.Pop()
	if err != nil {
		return err
	}
	return pushAll(st, a, a)
}

// ( a -- )
func drop(st *Stack) error {
	_, err := st.Pop()
	return err
}

// ( b a -- a b )
func swap(st *Stack) error {
	b, a, err := st.pop2()
	if err != nil {
		return err
	}
	return pushAll(st, a, b)
}

// ( b a -- b a b )
func over(st *Stack) error {
	b, a, err := st.pop2()
	if err != nil {
		return err
	}
	return pushAll(st, b, a, b)
}

// ( c b a -- b a c )
func rot(st *Stack) error {
	b, a, err := st.pop2()
	if err != nil {
		return err
	}
	c, err := st.Pop()
	if err != nil {
		return err
	}
	return pushAll(st, b, a, c)
}

func pushAll(st *Stack, vals ...int16) error {
	for _, val := range vals {
		if err := st.Push(val); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VM) cr(_ *Cursor) error {
	_, err := io.WriteString(vm.out, "\n")
	return err
}

func (vm *VM) dot(_ *Cursor) error {
	val, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	_, err = io.WriteString(vm.out, strconv.Itoa(int(val)))
	return err
}

// emit writes the low byte of the top value as a character.
func (vm *VM) emit(_ *Cursor) error {
	val, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	_, err = runeio.WriteRune(vm.out, rune(byte(val)))
	return err
}

// dotQuote writes the raw tokens up to one ending in a closing quote,
// separated by single spaces.
func (vm *VM) dotQuote(cur *Cursor) error {
	var parts []string
	for {
		token, ok := cur.Next()
		if !ok {
			return ErrUnterminatedString
		}
		if strings.HasSuffix(token, `"`) {
			parts = append(parts, strings.TrimRight(token, `"`))
			break
		}
		parts = append(parts, token)
	}
	_, err := io.WriteString(vm.out, strings.Join(parts, " "))
	return err
}
