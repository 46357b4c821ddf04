package main

import (
	"sort"
	"strconv"
	"strings"
)

// Dictionary maps upper-cased word names to their bodies.
//
// Bodies are flattened when defined: any token naming an already defined
// word is replaced by that word's body, so each word is frozen to the
// dictionary as it stood at its definition. Other tokens are kept as written,
// to be resolved when the word runs.
type Dictionary struct {
	words map[string][]string
}

// Lookup returns the body of a defined word.
func (d *Dictionary) Lookup(name string) ([]string, bool) {
	body, defined := d.words[strings.ToUpper(name)]
	return body, defined
}

// Define stores a body under name, overwriting any prior definition.
func (d *Dictionary) Define(name string, body []string) {
	if d.words == nil {
		d.words = make(map[string][]string)
	}
	d.words[strings.ToUpper(name)] = body
}

// Len returns the number of defined words.
func (d *Dictionary) Len() int { return len(d.words) }

// Names returns all defined word names in sorted order.
func (d *Dictionary) Names() []string {
	names := make([]string, 0, len(d.words))
	for name := range d.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expand appends token to body, splicing in the body of any word it names.
func (d *Dictionary) expand(body []string, token string) []string {
	if def, defined := d.Lookup(token); defined {
		return append(body, def...)
	}
	return append(body, token)
}

// define handles the ": name body... ;" form, the leading ":" having already
// been consumed from cur.
func (vm *VM) define(cur *Cursor) error {
	name, err := wordName(cur)
	if err != nil {
		return err
	}

	var body []string
	for {
		token, ok := cur.Next()
		if !ok {
			return ErrUnterminatedDefinition
		}
		if token == ";" {
			break
		}
		body = vm.dict.expand(body, token)
	}

	vm.logf("define", "%v -> %v", name, body)
	vm.dict.Define(name, body)
	return nil
}

func wordName(cur *Cursor) (string, error) {
	token, ok := cur.Next()
	if !ok {
		return "", ErrUnterminatedDefinition
	}
	name := strings.ToUpper(token)
	if _, err := parseLiteral(name); err == nil {
		return "", ErrInvalidWordName
	}
	return name, nil
}

func parseLiteral(token string) (int16, error) {
	n, err := strconv.ParseInt(token, 10, 16)
	return int16(n), err
}
