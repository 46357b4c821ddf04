package main

import "strings"

// ifThen implements "IF true... [ELSE false...] THEN": it pops a condition,
// consumes the whole construct from cur, then runs the selected branch.
func (vm *VM) ifThen(cur *Cursor) error {
	cond, err := vm.stack.Pop()
	if err != nil {
		return err
	}

	ifTrue, ifFalse, err := scanBranches(cur)
	if err != nil {
		return err
	}

	branch := ifFalse
	if cond != 0 {
		branch = ifTrue
	}
	vm.logf("if", "%v -> %v", cond, branch)
	if len(branch) == 0 {
		return nil
	}
	return vm.run(branch)
}

// scanBranches consumes tokens through the THEN matching an already consumed
// IF. Nested IF ... THEN constructs are passed through verbatim into the
// enclosing branch, to be parsed again if that branch runs.
func scanBranches(cur *Cursor) (ifTrue, ifFalse []string, err error) {
	branch := &ifTrue
	depth := 0
	for {
		token, ok := cur.Next()
		if !ok {
			return nil, nil, ErrMissingThen
		}
		switch strings.ToUpper(token) {
		case "IF":
			depth++
		case "ELSE":
			if depth == 0 {
				branch = &ifFalse
				continue
			}
		case "THEN":
			if depth == 0 {
				return ifTrue, ifFalse, nil
			}
			depth--
		}
		*branch = append(*branch, token)
	}
}
