package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	c := &Compiler{logf: func(string, ...interface{}) {}}
	c.registerBuiltins()
	c.lex.src = []byte(src)
	c.lex.line = 1
	var toks []Token
	c.next()
	for c.lex.tok != tokEOF {
		toks = append(toks, c.lex.tok)
		c.next()
	}
	return toks
}

func TestLexerNumberBases(t *testing.T) {
	c := &Compiler{logf: func(string, ...interface{}) {}}
	c.registerBuiltins()
	c.lex.src = []byte("0x2a 052 42 'a'")
	c.lex.line = 1

	c.next()
	require.Equal(t, Num, c.lex.tok)
	assert.EqualValues(t, 42, c.lex.ival)

	c.next()
	require.Equal(t, Num, c.lex.tok)
	assert.EqualValues(t, 42, c.lex.ival, "052 is octal 42")

	c.next()
	require.Equal(t, Num, c.lex.tok)
	assert.EqualValues(t, 42, c.lex.ival)

	c.next()
	require.Equal(t, Num, c.lex.tok)
	assert.EqualValues(t, 'a', c.lex.ival)
}

// Only \n is a recognized escape; any other \x yields the literal x, per
// spec.md §4.1's minimal escape handling.
func TestLexerCharEscapes(t *testing.T) {
	c := &Compiler{logf: func(string, ...interface{}) {}}
	c.registerBuiltins()
	c.lex.src = []byte(`'\n' '\t' '\\'`)
	c.lex.line = 1

	want := []int64{'\n', 't', '\\'}
	for _, w := range want {
		c.next()
		require.Equal(t, Num, c.lex.tok)
		assert.EqualValues(t, w, c.lex.ival)
	}
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, "int x; if (x) return x; foo_bar2")
	assert.Equal(t, []Token{
		Int, Id, Token(';'),
		If, Token('('), Id, Token(')'), Return, Id, Token(';'),
		Id,
	}, toks)
}

// lexQuoted itself only copies literal bytes; NUL-termination is added one
// layer up, by expr's tokStr production, once it knows the literal isn't
// continued by an adjacent string token.
func TestLexerStringLiteral(t *testing.T) {
	c := &Compiler{logf: func(string, ...interface{}) {}}
	c.registerBuiltins()
	c.lex.src = []byte(`"hi\n"`)
	c.lex.line = 1
	c.next()
	require.Equal(t, tokStr, c.lex.tok)
	addr := int(c.lex.ival)
	require.Len(t, c.data.bytes, addr+3)
	assert.Equal(t, byte('h'), c.data.bytes[addr])
	assert.Equal(t, byte('i'), c.data.bytes[addr+1])
	assert.Equal(t, byte('\n'), c.data.bytes[addr+2])
}
