package main

// binOps maps a simple left-associative binary operator token to the VM op
// it compiles to; each of these follows the identical "PSH, parse RHS at
// the level above this operator's precedence class, emit op" shape
// (spec.md §4.3's infix loop).
var binOps = map[Token]Op{
	Or: OR, Xor: XOR, And: AND,
	Eq: EQ, Ne: NE, Lt: LT, Gt: GT, Le: LE, Ge: GE,
	Shl: SHL, Shr: SHR,
	Mul: MUL, Div: DIV, Mod: MOD,
}

// binOpRHSLevel gives the level each binary operator's right-hand operand
// must be parsed at: the level of the precedence class immediately above
// the operator's own class, per original_source/main.rs (Mul/Div/Mod ->
// Inc at lines 895/903/911, Shl/Shr -> Add at 834/842, Lt/Gt/Le/Ge -> Shl
// at 805/813/821/829, Eq/Ne -> Lt at 789/797). A class with only one
// member (Or, Xor, And) has its next-higher level equal to op+1 already,
// but every multi-member class must recurse at the SAME level for all its
// members, not op+1, or left-associativity within that class breaks: e.g.
// "6 * 4 / 3" parsed with Mul recursing to Div would re-admit Div into
// Mul's own right operand and misgroup as 6*(4/3) instead of (6*4)/3.
var binOpRHSLevel = map[Token]Token{
	Or:  Xor,
	Xor: And,
	And: Eq,
	Eq:  Lt, Ne: Lt,
	Lt: Shl, Gt: Shl, Le: Shl, Ge: Shl,
	Shl: Add, Shr: Add,
	Mul: Inc, Div: Inc, Mod: Inc,
}

// expr implements the precedence-climbing generator of spec.md §4.3. level
// is the minimum operator-token value the infix loop is willing to consume;
// since token values are assigned in precedence order, the loop condition
// is a direct numeric comparison with no precedence table.
func (c *Compiler) expr(level Token) {
	c.exprPrefix()
	for c.lex.tok >= level {
		t := c.curType
		op := c.lex.tok
		switch {
		case op == Assign:
			c.doAssign(t)
		case op == Cond:
			c.doCond()
		case op == Lor:
			c.doLor()
		case op == Lan:
			c.doLan()
		case op == Add:
			c.doAdd(t)
		case op == Sub:
			c.doSub(t)
		case op == Inc || op == Dec:
			c.doPostIncDec(op, t)
		case op == Brak:
			c.doSubscript(t)
		default:
			vmOp, ok := binOps[op]
			if !ok {
				c.errorf("compiler error tk=%d", int(op))
			}
			c.next()
			c.code.emitOp(PSH)
			c.expr(binOpRHSLevel[op])
			c.code.emitOp(vmOp)
			c.curType = INT
		}
	}
}

// exprPrefix parses the lvalue-or-value production: the left operand of
// expr's infix loop.
func (c *Compiler) exprPrefix() {
	switch c.lex.tok {
	case Num:
		c.code.emitOpArg(IMM, c.lex.ival)
		c.curType = INT
		c.next()

	case tokStr:
		addr := int(c.lex.ival)
		c.next()
		for c.lex.tok == tokStr {
			c.next()
		}
		// NUL-terminate explicitly rather than relying on an adjacent
		// allocation's padding to supply a zero byte (a literal whose
		// length happens to be word-aligned would otherwise run straight
		// into whatever's allocated next).
		c.data.writeByte(0)
		c.data.alignWord()
		c.code.emitOpArg(IMM, int64(addr))
		c.curType = CHAR + PTR

	case Sizeof:
		c.next()
		c.expect(Token('('), "open paren expected in sizeof")
		bt := c.parseBaseType()
		c.expect(Token(')'), "close paren expected in sizeof")
		c.code.emitOpArg(IMM, int64(bt.elemSize()))
		c.curType = INT

	case Id:
		c.exprIdent()

	case Token('('):
		c.next()
		if c.lex.tok == Int || c.lex.tok == Char || c.lex.tok == Void {
			bt := c.parseBaseType()
			c.expect(Token(')'), "bad cast")
			c.expr(Inc)
			c.curType = bt
		} else {
			c.expr(Assign)
			c.expect(Token(')'), "close paren expected")
		}

	case Mul:
		c.next()
		c.expr(Inc)
		if !c.curType.isPointer() {
			c.errorf("bad dereference")
		}
		c.curType -= PTR
		if c.curType == CHAR {
			c.code.emitOp(LC)
		} else {
			c.code.emitOp(LI)
		}

	case And:
		c.next()
		c.expr(Inc)
		lastOp, ok := c.code.lastOp()
		if !ok || (lastOp != LC && lastOp != LI) {
			c.errorf("bad address-of")
		}
		c.code.dropLast()
		c.curType += PTR

	case Token('!'):
		c.next()
		c.expr(Inc)
		c.code.emitOp(PSH)
		c.code.emitOpArg(IMM, 0)
		c.code.emitOp(EQ)
		c.curType = INT

	case Token('~'):
		c.next()
		c.expr(Inc)
		c.code.emitOp(PSH)
		c.code.emitOpArg(IMM, -1)
		c.code.emitOp(XOR)
		c.curType = INT

	case Add:
		c.next()
		c.expr(Inc)
		c.curType = INT

	case Sub:
		c.next()
		if c.lex.tok == Num {
			c.code.emitOpArg(IMM, -c.lex.ival)
			c.next()
		} else {
			c.code.emitOpArg(IMM, -1)
			c.code.emitOp(PSH)
			c.expr(Inc)
			c.code.emitOp(MUL)
		}
		c.curType = INT

	case Inc, Dec:
		c.exprPrefixIncDec()

	default:
		c.errorf("unexpected token %s", c.tokenText())
	}
}

// exprIdent parses the Id production: variable reference, function/primitive
// call, or enum-constant reference.
func (c *Compiler) exprIdent() {
	id := c.lex.id
	rec := c.sym.get(id)
	c.next()

	if c.lex.tok == Token('(') {
		c.next()
		nargs := 0
		if c.lex.tok != Token(')') {
			for {
				c.expr(Assign)
				c.code.emitOp(PSH)
				nargs++
				if c.lex.tok != Token(',') {
					break
				}
				c.next()
			}
		}
		c.expect(Token(')'), "close paren expected")

		switch rec.class {
		case clsSys:
			op := Op(rec.val)
			if op == PRTF {
				// Preserve the original's "read six slots" primitive
				// contract without reading caller garbage: pad with
				// literal zero arguments instead of leaving stack holes.
				for nargs < 6 {
					c.code.emitOpArg(IMM, 0)
					c.code.emitOp(PSH)
					nargs++
				}
			}
			c.code.emitOp(op)
		case clsFun:
			c.code.emitOpArg(JSR, int64(rec.val))
		default:
			c.errorf("bad function call")
		}
		if nargs > 0 {
			c.code.emitOpArg(ADJ, int64(nargs))
		}
		c.curType = rec.typ
		return
	}

	switch rec.class {
	case clsNum:
		c.code.emitOpArg(IMM, int64(rec.val))
		c.curType = INT
		return
	case clsLoc:
		c.code.emitOpArg(LEA, int64(c.locals-rec.val))
	case clsGlo:
		c.code.emitOpArg(IMM, int64(rec.val))
	default:
		c.errorf("undefined variable")
	}
	c.curType = rec.typ
	if rec.typ == CHAR {
		c.code.emitOp(LC)
	} else {
		c.code.emitOp(LI)
	}
}

// exprPrefixIncDec parses prefix ++/--: the operand is parsed first, then
// its trailing lvalue-load is spliced to duplicate the address, and the
// updated value becomes the expression's result.
func (c *Compiler) exprPrefixIncDec() {
	op := c.lex.tok
	c.next()
	c.expr(Inc)

	loadOp, ok := c.code.lastOp()
	if !ok || (loadOp != LC && loadOp != LI) {
		c.errorf("bad lvalue in pre-/post-increment")
	}
	c.code.rewriteLast(PSH)
	c.code.emitOp(loadOp)

	step := int64(1)
	if c.curType.needsScale() {
		step = int64(wordSize)
	}
	c.code.emitOp(PSH)
	c.code.emitOpArg(IMM, step)
	if op == Inc {
		c.code.emitOp(ADD)
	} else {
		c.code.emitOp(SUB)
	}
	if c.curType == CHAR {
		c.code.emitOp(SC)
	} else {
		c.code.emitOp(SI)
	}
}

func (c *Compiler) doAssign(t cType) {
	lastOp, ok := c.code.lastOp()
	if !ok || (lastOp != LC && lastOp != LI) {
		c.errorf("bad lvalue in assignment")
	}
	c.code.rewriteLast(PSH)
	c.next()
	c.expr(Assign)
	c.curType = t
	if t == CHAR {
		c.code.emitOp(SC)
	} else {
		c.code.emitOp(SI)
	}
}

func (c *Compiler) doCond() {
	c.next()
	b1 := c.code.emitOpArg(BZ, 0)
	c.expr(Assign)
	c.expect(Token(':'), "conditional missing colon")
	c.code.patch(b1, int64(c.code.here()+2))
	b2 := c.code.emitOpArg(JMP, 0)
	c.expr(Cond)
	c.code.patch(b2, int64(c.code.here()))
}

func (c *Compiler) doLor() {
	c.next()
	b := c.code.emitOpArg(BNZ, 0)
	c.expr(Lan)
	c.code.patch(b, int64(c.code.here()))
	c.curType = INT
}

func (c *Compiler) doLan() {
	c.next()
	b := c.code.emitOpArg(BZ, 0)
	c.expr(Or)
	c.code.patch(b, int64(c.code.here()))
	c.curType = INT
}

func (c *Compiler) doAdd(t cType) {
	c.next()
	c.code.emitOp(PSH)
	c.expr(Mul)
	if t.needsScale() {
		c.scaleTop()
	}
	c.code.emitOp(ADD)
	c.curType = t
}

func (c *Compiler) doSub(t cType) {
	c.next()
	c.code.emitOp(PSH)
	c.expr(Mul)
	rhsType := c.curType
	switch {
	case t.needsScale() && rhsType == t:
		c.code.emitOp(SUB)
		c.code.emitOp(PSH)
		c.code.emitOpArg(IMM, int64(wordSize))
		c.code.emitOp(DIV)
		c.curType = INT
	case t.needsScale():
		c.scaleTop()
		c.code.emitOp(SUB)
		c.curType = t
	default:
		c.code.emitOp(SUB)
		c.curType = t
	}
}

// scaleTop scales the value currently in the accumulator by wordSize,
// matching the "PSH, IMM, word_size, MUL" sequence spec.md §4.3 uses for
// both pointer-arithmetic addition and subscripting.
func (c *Compiler) scaleTop() {
	c.code.emitOp(PSH)
	c.code.emitOpArg(IMM, int64(wordSize))
	c.code.emitOp(MUL)
}

func (c *Compiler) doPostIncDec(op Token, t cType) {
	loadOp, ok := c.code.lastOp()
	if !ok || (loadOp != LC && loadOp != LI) {
		c.errorf("bad lvalue in pre-/post-increment")
	}
	c.code.rewriteLast(PSH)
	c.code.emitOp(loadOp)

	step := int64(1)
	if t.needsScale() {
		step = int64(wordSize)
	}
	c.code.emitOp(PSH)
	c.code.emitOpArg(IMM, step)
	if op == Inc {
		c.code.emitOp(ADD)
	} else {
		c.code.emitOp(SUB)
	}
	if t == CHAR {
		c.code.emitOp(SC)
	} else {
		c.code.emitOp(SI)
	}
	// Compensate back to the pre-update value, since postfix yields the
	// value before the update.
	c.code.emitOp(PSH)
	c.code.emitOpArg(IMM, step)
	if op == Inc {
		c.code.emitOp(SUB)
	} else {
		c.code.emitOp(ADD)
	}
	c.next()
	c.curType = t
}

func (c *Compiler) doSubscript(t cType) {
	c.next()
	c.code.emitOp(PSH)
	c.expr(Assign)
	if t.needsScale() {
		c.scaleTop()
	}
	c.expect(Token(']'), "close bracket expected")
	if !t.isPointer() {
		c.errorf("pointer type expected")
	}
	c.code.emitOp(ADD)
	c.curType = t - PTR
	if c.curType == CHAR {
		c.code.emitOp(LC)
	} else {
		c.code.emitOp(LI)
	}
}

// parseBaseType reads an optional int/char/void keyword (defaulting to INT
// when absent, per spec.md §4.5) followed by zero or more '*' pointer
// markers, consuming tokens as it goes. Used by casts and sizeof;
// decl.go reads declaration base types with its own inline switches.
func (c *Compiler) parseBaseType() cType {
	t := INT
	switch c.lex.tok {
	case Int:
		c.next()
	case Char, Void:
		t = CHAR
		c.next()
	}
	for c.lex.tok == Mul {
		t += PTR
		c.next()
	}
	return t
}
