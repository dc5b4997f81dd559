package main

import "strconv"

// Token identifies a lexical token kind. For single-character operators and
// punctuation that take no part in precedence climbing, Token is simply the
// rune's own code point; every operator with a precedence level gets one of
// the dedicated constants below, all numbered from 128 up.
//
// The numeric ordering of the operator tokens below is load-bearing: expr's
// precedence-climbing loop compares raw token values against a minimum
// level, so Assign < Cond < Lor < Lan < Or < Xor < And < Eq,Ne < Lt,Gt,Le,Ge
// < Shl,Shr < Add,Sub < Mul,Div,Mod < Inc,Dec < Brak must hold exactly.
type Token int

// Keyword, class-marker, and operator tokens, numbered the same way the
// original c4 numbers them (see original_source/main.rs): literal/class
// tokens first, then keywords, then operators in increasing precedence.
const (
	Num Token = 128 + iota // integer literal; Lexer.ival holds the value
	Fun                    // identifier class: user-defined function
	Sys                    // identifier class: host primitive
	Glo                    // identifier class: global variable
	Loc                    // identifier class: local variable or parameter
	Id                     // identifier not (yet) resolved to a keyword

	Char   // "char"
	Else   // "else"
	Enum   // "enum"
	If     // "if"
	Int    // "int"
	Return // "return"
	Sizeof // "sizeof"
	Void   // "void", accepted as a base-type keyword equivalent to Char
	While  // "while"

	Assign // =
	Cond   // ?
	Lor    // ||
	Lan    // &&
	Or     // |
	Xor    // ^
	And    // &
	Eq     // ==
	Ne     // !=
	Lt     // <
	Gt     // >
	Le     // <=
	Ge     // >=
	Shl    // <<
	Shr    // >>
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Mod    // %
	Inc    // ++
	Dec    // --
	Brak   // [
)

// tokStr reuses the quote rune itself as the token kind for string literal
// productions, exactly as spec.md §4.1 describes: the opening quote
// character doubles as the returned token. A character literal's quote is
// not given a token kind of its own: it resolves to a plain Num (its
// value is just an integer constant), matching the original's treatment.
const (
	tokEOF Token = 0
	tokStr Token = '"'
)

// tokenNames gives a short diagnostic label for tokens that aren't already a
// printable single character; used only by error formatting.
var tokenNames = map[Token]string{
	Num: "number", Fun: "<fun>", Sys: "<sys>", Glo: "<glo>", Loc: "<loc>", Id: "identifier",
	Char: "char", Else: "else", Enum: "enum", If: "if", Int: "int", Return: "return",
	Sizeof: "sizeof", Void: "void", While: "while",
	Assign: "=", Cond: "?", Lor: "||", Lan: "&&", Or: "|", Xor: "^", And: "&",
	Eq: "==", Ne: "!=", Lt: "<", Gt: ">", Le: "<=", Ge: ">=", Shl: "<<", Shr: ">>",
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Inc: "++", Dec: "--", Brak: "[",
}

func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	if t > 0 && t < 128 {
		return string(rune(t))
	}
	return "<tok " + strconv.Itoa(int(t)) + ">"
}
