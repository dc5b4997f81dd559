package main

// stmt implements the statement generator of spec.md §4.4.
func (c *Compiler) stmt() {
	switch c.lex.tok {
	case If:
		c.stmtIf()
	case While:
		c.stmtWhile()
	case Return:
		c.stmtReturn()
	case Token('{'):
		c.next()
		for c.lex.tok != Token('}') {
			c.stmt()
		}
		c.next()
	case Token(';'):
		c.next()
	default:
		c.expr(Assign)
		c.expect(Token(';'), "semicolon expected")
	}
}

func (c *Compiler) stmtIf() {
	c.next()
	c.expect(Token('('), "open paren expected")
	c.expr(Assign)
	c.expect(Token(')'), "close paren expected")

	b := c.code.emitOpArg(BZ, 0)
	c.stmt()
	if c.lex.tok == Else {
		// Point b past the JMP about to be emitted (opcode + operand).
		c.code.patch(b, int64(c.code.here()+2))
		b2 := c.code.emitOpArg(JMP, 0)
		c.next()
		c.stmt()
		c.code.patch(b2, int64(c.code.here()))
	} else {
		c.code.patch(b, int64(c.code.here()))
	}
}

func (c *Compiler) stmtWhile() {
	c.next()
	loopStart := c.code.here()
	c.expect(Token('('), "open paren expected")
	c.expr(Assign)
	c.expect(Token(')'), "close paren expected")

	b := c.code.emitOpArg(BZ, 0)
	c.stmt()
	c.code.emitOpArg(JMP, int64(loopStart))
	c.code.patch(b, int64(c.code.here()))
}

func (c *Compiler) stmtReturn() {
	c.next()
	if c.lex.tok != Token(';') {
		c.expr(Assign)
	}
	c.code.emitOp(LEV)
	c.expect(Token(';'), "semicolon expected")
}
