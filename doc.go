/* Package main: tinyforth -- a small FORTH-like stack interpreter

tinyforth reads a program as whitespace delimited tokens and executes them,
one at a time, against a bounded stack of signed 16-bit cells.

Section 1: Tokens

Every token is, in order of precedence:

	:       begins a word definition, through the next ;
	NAME    a previously defined word, whose body then runs
	PRIM    one of the builtin words below
	N       a decimal integer literal in [-32768, 32767], pushed

Anything else fails the run with an unknown token error. Word names and
builtins are case insensitive.

Section 2: Builtins

	+ - * /           ( b a -- b?a ) wrapping 16-bit arithmetic
	= < >             ( b a -- flag ) true is -1, false is 0
	AND OR            ( b a -- flag )
	NOT               ( a -- flag )
	DUP DROP SWAP     ( a -- a a ) ( a -- ) ( b a -- a b )
	OVER ROT          ( b a -- b a b ) ( c b a -- b a c )
	CR . EMIT         newline, print decimal, print low byte as a character
	." text"          print text up to the closing quote
	IF ... ELSE ... THEN

Operands are popped before anything else is checked: a failing builtin leaves
its operands consumed. Pushing onto a full stack fails the run.

Section 3: Definitions

	: SQUARE DUP * ;

Word bodies are flattened when defined: a body token naming an already
defined word is replaced by that word's current body. Redefining a word
later does not change any word defined in terms of it. A token that names
nothing yet is kept as is, to be looked up when the word runs; this is how a
word may refer to itself.

Section 4: Conditionals

IF pops a condition, then consumes everything through its matching THEN,
counting nested IF ... THEN pairs. Only the chosen branch runs; a nested
conditional inside it is parsed again when reached.

Each word call and chosen branch runs one level deeper. Runs deeper than the
configured limit fail with a recursion limit error rather than exhausting the
host stack.

Section 5: Running

	tinyforth [flags] <source-file> [stack-size=<bytes>]

After the program ends, successfully or not, the remaining stack is saved
bottom-to-top to stack.fth (see the -o flag), each value followed by a space.
Settings may also come from a YAML file given with -config.
*/
package main
