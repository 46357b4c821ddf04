package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "+", ".", "CR"}, Tokenize(" 1 2\t+\n.   CR\n"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" \n\t "))
}

func TestCursor(t *testing.T) {
	cur := NewCursor([]string{"a", "b"})
	assert.False(t, cur.Done())
	assert.Equal(t, []string{"a", "b"}, cur.Rest())

	tok, ok := cur.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", tok)
	assert.Equal(t, 1, cur.Pos())
	assert.Equal(t, []string{"b"}, cur.Rest())

	tok, ok = cur.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", tok)
	assert.True(t, cur.Done())

	_, ok = cur.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, cur.Pos(), "exhausted cursor must not advance")
	assert.Empty(t, cur.Rest())
}

func TestScanBranches(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		ifTrue  []string
		ifFalse []string
		rest    []string
		err     error
	}{
		{
			name:   "no else",
			src:    "1 2 THEN 3",
			ifTrue: []string{"1", "2"},
			rest:   []string{"3"},
		},
		{
			name:    "else",
			src:     "1 ELSE 2 THEN 3",
			ifTrue:  []string{"1"},
			ifFalse: []string{"2"},
			rest:    []string{"3"},
		},
		{
			name:    "nested then before outer else",
			src:     "1 IF 5 THEN ELSE 6 THEN 7",
			ifTrue:  []string{"1", "IF", "5", "THEN"},
			ifFalse: []string{"6"},
			rest:    []string{"7"},
		},
		{
			name:    "nested else stays nested",
			src:     "IF 1 ELSE 2 THEN ELSE 3 then",
			ifTrue:  []string{"IF", "1", "ELSE", "2", "THEN"},
			ifFalse: []string{"3"},
		},
		{
			name:    "case insensitive",
			src:     "1 else 2 Then",
			ifTrue:  []string{"1"},
			ifFalse: []string{"2"},
		},
		{
			name: "empty",
			src:  "THEN",
		},
		{
			name: "missing then",
			src:  "1 ELSE 2",
			err:  ErrMissingThen,
		},
		{
			name: "missing outer then",
			src:  "IF 1 THEN",
			err:  ErrMissingThen,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cur := NewCursor(Tokenize(tc.src))
			ifTrue, ifFalse, err := scanBranches(cur)
			if tc.err != nil {
				assert.Equal(t, tc.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ifTrue, ifTrue, "true branch")
			assert.Equal(t, tc.ifFalse, ifFalse, "false branch")
			assert.Equal(t, len(tc.rest), len(cur.Rest()), "remaining tokens")
			if len(tc.rest) > 0 {
				assert.Equal(t, tc.rest, cur.Rest(), "remaining tokens")
			}
		})
	}
}
