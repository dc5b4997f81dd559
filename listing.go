package main

import "fmt"

// printListingLine implements -s mode's per-line interleaving (spec.md
// §7's CLI section): the source line that just ended, followed by every
// instruction word emitted while scanning it, one "OP  operand" (or bare
// "OP") line each, without the cycle prefix -d traces carry.
// lex.lastLineStart is a cursor into the code buffer, so each call only
// prints what's new since the last one.
func (c *Compiler) printListingLine() {
	w := c.lw
	if w == nil {
		return
	}
	fmt.Fprintln(w, c.currentLine())
	for c.lex.lastLineStart < c.code.here() {
		op := Op(c.code.words[c.lex.lastLineStart])
		c.lex.lastLineStart++
		if op.hasOperand() && c.lex.lastLineStart < c.code.here() {
			arg := c.code.words[c.lex.lastLineStart]
			c.lex.lastLineStart++
			fmt.Fprintf(w, "%s  %d\n", op, arg)
		} else {
			fmt.Fprintf(w, "%s\n", op)
		}
	}
}
