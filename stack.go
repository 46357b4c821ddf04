package main

// DefaultStackSize is the default stack budget in bytes; each cell takes two.
const DefaultStackSize = 128 * 1024

// Stack is a bounded LIFO of 16-bit cells.
type Stack struct {
	cells []int16
	limit int
}

// NewStack creates a stack able to hold size/2 cells.
func NewStack(size int) *Stack {
	var st Stack
	st.reset(size)
	return &st
}

func (st *Stack) reset(size int) {
	st.cells = nil
	st.limit = size / 2
}

// Len returns the number of cells on the stack.
func (st *Stack) Len() int { return len(st.cells) }

// Cap returns the maximum number of cells the stack may hold.
func (st *Stack) Cap() int { return st.limit }

// Push appends a value, failing with ErrStackOverflow when the stack is full;
// a refused value is not stored.
func (st *Stack) Push(val int16) error {
	if len(st.cells) >= st.limit {
		return ErrStackOverflow
	}
	st.cells = append(st.cells, val)
	return nil
}

// Pop removes and returns the top value, failing with ErrStackUnderflow
// when the stack is empty.
func (st *Stack) Pop() (int16, error) {
	i := len(st.cells) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val := st.cells[i]
	st.cells = st.cells[:i]
	return val, nil
}

// Peek returns the top value without removing it.
func (st *Stack) Peek() (int16, bool) {
	if i := len(st.cells) - 1; i >= 0 {
		return st.cells[i], true
	}
	return 0, false
}

// Values returns a bottom-to-top copy of the stack.
func (st *Stack) Values() []int16 {
	return append([]int16(nil), st.cells...)
}

// Drain pops every value, returning them in their original bottom-to-top
// order; the stack is left empty.
func (st *Stack) Drain() []int16 {
	var popped []int16
	for {
		val, err := st.Pop()
		if err != nil {
			break
		}
		popped = append(popped, val)
	}
	for i, j := 0, len(popped)-1; i < j; i, j = i+1, j-1 {
		popped[i], popped[j] = popped[j], popped[i]
	}
	return popped
}

// pop2 pops the top value a, then the one below it b. Any value popped
// before a failure stays consumed.
func (st *Stack) pop2() (b, a int16, err error) {
	if a, err = st.Pop(); err == nil {
		b, err = st.Pop()
	}
	return b, a, err
}
