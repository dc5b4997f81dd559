package main

// parseDecl parses one top-level declaration (spec.md §4.5): a base type
// (or an enum block), followed by a comma-separated declarator list that is
// either a run of global variable names or a single function definition.
//
// The declarator loop and its trailing consume exactly mirror the original:
// a function definition's closing '}' is never consumed inside the function
// parsing itself — it satisfies the loop's own exit condition and is
// consumed by the single `c.next()` shared by every top-level declaration.
func (c *Compiler) parseDecl() {
	bt := INT
	switch c.lex.tok {
	case Int:
		c.next()
	case Char, Void:
		bt = CHAR
		c.next()
	case Enum:
		c.parseEnum()
	}

	for c.lex.tok != Token(';') && c.lex.tok != Token('}') {
		t := bt
		for c.lex.tok == Mul {
			t += PTR
			c.next()
		}
		if c.lex.tok != Id {
			c.errorf("bad global declaration: unexpected %s", c.tokenText())
		}
		rec := c.sym.get(c.lex.id)
		if rec.class != clsNone {
			c.errorf("duplicate global definition")
		}
		c.next()
		rec.typ = t

		if c.lex.tok == Token('(') {
			c.parseFunction(rec)
		} else {
			rec.class = clsGlo
			rec.val = c.data.allocGlobal()
		}

		if c.lex.tok == Token(',') {
			c.next()
		}
	}
	c.next() // consume ';' or '}'
}

// parseEnum handles `enum [tag] { A [= Num], ... }`. Enum constants default
// to 0 and auto-increment; an explicit initializer must be a literal Num.
func (c *Compiler) parseEnum() {
	c.next() // consume 'enum'
	if c.lex.tok != Token('{') {
		c.next() // skip an optional tag identifier, unused
	}
	if c.lex.tok != Token('{') {
		return
	}
	c.next() // consume '{'
	val := int64(0)
	for c.lex.tok != Token('}') {
		if c.lex.tok != Id {
			c.errorf("bad enum identifier: unexpected %s", c.tokenText())
		}
		rec := c.sym.get(c.lex.id)
		c.next()
		if c.lex.tok == Assign {
			c.next()
			if c.lex.tok != Num {
				c.errorf("bad enum initializer")
			}
			val = c.lex.ival
			c.next()
		}
		rec.class, rec.typ, rec.val = clsNum, INT, int(val)
		val++
		if c.lex.tok == Token(',') {
			c.next()
		}
	}
	c.next() // consume '}'
}

// parseFunction parses a function definition once its name and return type
// have already been recorded in rec, starting at the parameter list's '('.
// It shadows parameters and locals onto the symbol table via their
// hclass/htype/hval save slots and unshadows them once the body is parsed,
// per spec.md §4.5 / §9's "Symbol-table shadowing" design note. It does not
// consume the function body's closing '}'; the caller's declarator loop
// exits on it and the shared terminator consume picks it up.
func (c *Compiler) parseFunction(rec *ident) {
	rec.class = clsFun
	rec.val = c.code.here()
	c.next() // consume '('

	i := 0
	for c.lex.tok != Token(')') {
		pt := INT
		switch c.lex.tok {
		case Int:
			c.next()
		case Char, Void:
			pt = CHAR
			c.next()
		}
		for c.lex.tok == Mul {
			pt += PTR
			c.next()
		}
		if c.lex.tok != Id {
			c.errorf("bad parameter declaration: unexpected %s", c.tokenText())
		}
		p := c.sym.get(c.lex.id)
		if p.class == clsLoc {
			c.errorf("duplicate parameter definition")
		}
		c.shadow(p, clsLoc, pt, i)
		i++
		c.next()
		if c.lex.tok == Token(',') {
			c.next()
		}
	}
	c.next() // consume ')'
	if c.lex.tok != Token('{') {
		c.errorf("bad function definition: unexpected %s", c.tokenText())
	}
	i++
	loc := i
	c.next() // consume '{'

	for c.lex.tok == Int || c.lex.tok == Char || c.lex.tok == Void {
		lbt := INT
		if c.lex.tok != Int {
			lbt = CHAR
		}
		c.next()
		for c.lex.tok != Token(';') {
			t := lbt
			for c.lex.tok == Mul {
				t += PTR
				c.next()
			}
			if c.lex.tok != Id {
				c.errorf("bad local declaration: unexpected %s", c.tokenText())
			}
			p := c.sym.get(c.lex.id)
			if p.class == clsLoc {
				c.errorf("duplicate local definition")
			}
			i++
			c.shadow(p, clsLoc, t, i)
			c.next()
			if c.lex.tok == Token(',') {
				c.next()
			}
		}
		c.next() // consume ';'
	}

	c.code.emitOpArg(ENT, int64(i-loc))
	c.locals = loc
	for c.lex.tok != Token('}') {
		c.stmt()
	}
	c.code.emitOp(LEV)
	c.sym.unshadowLocals()
}

// shadow saves p's current class/type/val into its h-slots and overwrites
// them with the given shadowing values.
func (c *Compiler) shadow(p *ident, class idClass, typ cType, val int) {
	p.hclass, p.htype, p.hval = p.class, p.typ, p.val
	p.class, p.typ, p.val = class, typ, val
}
