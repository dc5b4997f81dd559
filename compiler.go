package main

import (
	"fmt"
	"io"

	"c4go/internal/panicerr"
)

// Program is the output of a successful Compile: the emitted code and data
// segments plus the entry address of main, ready to be handed to a Machine.
type Program struct {
	Code  []int64
	Data  []byte
	Entry int
}

// Compiler holds all compile-time state: the lexer cursor, symbol table, and
// the code/data buffers being emitted into. A single Compiler value is used
// for exactly one Compile call; per spec.md §5 everything here is
// single-threaded and the four regions (code, data, stack-to-be, symbols)
// are appended to monotonically.
type Compiler struct {
	lex  lexState
	sym  symTable
	code codeBuf
	data dataBuf

	curType cType // type of the expression just parsed (ty in the original)
	locals  int   // loc: frame-relative slot counter for the function being parsed

	listing bool
	trace   bool
	lw      io.Writer

	logf func(format string, args ...interface{})
}

// Compile compiles name's source into a Program. Compile-time errors are
// reported by panicking with a compileError from deep within the recursive
// descent; panicerr.Recover turns that (or any other abnormal exit) back
// into a plain error return, matching spec.md §7: "the first error
// terminates the process" without unwinding by hand through every call
// frame.
func Compile(name string, src []byte, opts ...Option) (prog *Program, err error) {
	c := &Compiler{logf: func(string, ...interface{}) {}}
	Options(opts...).applyCompiler(c)

	rerr := panicerr.Recover("compile "+name, func() error {
		c.registerBuiltins()
		c.lex.src = src
		c.lex.line = 1
		c.next()
		for c.lex.tok != tokEOF {
			c.parseDecl()
		}
		if c.listing {
			c.printListingLine()
		}
		entry := c.sym.lookup("main")
		if entry < 0 || c.sym.get(entry).class != clsFun {
			c.errorf("main() not defined")
		}
		prog = &Program{Code: c.code.words, Data: c.data.bytes, Entry: c.sym.get(entry).val}
		return nil
	})
	if rerr != nil {
		if ce, ok := asCompileError(rerr); ok {
			return nil, ce
		}
		return nil, rerr
	}
	return prog, nil
}

// asCompileError unwraps a panicerr-wrapped panic value back to the
// compileError that errorf produced, if that's what happened.
func asCompileError(err error) (compileError, bool) {
	type causer interface{ Unwrap() error }
	for err != nil {
		if ce, ok := err.(compileError); ok {
			return ce, true
		}
		c, ok := err.(causer)
		if !ok {
			return compileError{}, false
		}
		err = c.Unwrap()
	}
	return compileError{}, false
}

// registerBuiltins pre-populates the symbol table with keywords and host
// primitives so the lexer's ordinary identifier path resolves them to their
// reserved token/class, per spec.md §4.1.
func (c *Compiler) registerBuiltins() {
	keyword := func(name string, tok Token) {
		i := c.sym.intern(name)
		c.sym.get(i).tok = tok
	}
	keyword("char", Char)
	keyword("else", Else)
	keyword("enum", Enum)
	keyword("if", If)
	keyword("int", Int)
	keyword("return", Return)
	keyword("sizeof", Sizeof)
	keyword("while", While)

	primitive := func(name string, op Op) {
		i := c.sym.intern(name)
		id := c.sym.get(i)
		id.class, id.typ, id.val = clsSys, INT, int(op)
	}
	primitive("open", OPEN)
	primitive("read", READ)
	primitive("close", CLOS)
	primitive("printf", PRTF)
	primitive("malloc", MALC)
	primitive("free", FREE)
	primitive("memset", MSET)
	primitive("memcmp", MCMP)
	primitive("exit", EXIT)

	// void is accepted only as an alias of char in casts and declarators
	// (resolved from the original's bootstrap, see SPEC_FULL.md).
	keyword("void", Void)
}

func (c *Compiler) expect(tok Token, errMsg string) {
	if c.lex.tok != tok {
		c.errorf("%s", errMsg)
	}
	c.next()
}

func (c *Compiler) tokenText() string {
	if c.lex.tok == Id && c.lex.id >= 0 {
		return c.sym.get(c.lex.id).name
	}
	return fmt.Sprintf("%v", c.lex.tok)
}
