/* Package main: c4, a single-pass compiler and bytecode VM for a tiny C
subset.

c4 compiles a restricted dialect of C, self-hosting but otherwise minimal:
globals, locals, functions, if/while/return, full-precedence expressions,
pointers, arrays of bytes, and enums, plus nine host primitives (open,
read, close, printf, malloc, free, memset, memcmp, exit). There is no
preprocessor, no floats, no struct/union/typedef, no for/do/switch/
break/continue/goto, no storage classes, and no type checking beyond
what pointer arithmetic needs.

The compiler is single-pass: there is no AST. The lexer, expression
generator, statement generator, and declaration parser all emit VM
bytecode directly as they recognize syntax, back-patching forward jumps
by remembering the bytecode index of an operand and overwriting it once
the branch target is known. The symbol table is a single flat array;
local variables shadow globals in place by saving a symbol's class/type/
value into reserved slots and restoring them when the enclosing function
ends, rather than pushing and popping a scope stack.

The VM is a small stack machine: a descending call-frame stack, a flat
accumulator register, and one opcode per bytecode word (two for the
handful that take an operand). The compiled data segment, the
malloc/free heap, and the runtime stack all live in one shared,
byte-addressable arena, because a C pointer to a local variable is
indistinguishable from a pointer to a global or a malloc'd block once
it's been taken. Bytecode is not in the arena: it is a separate word
array indexed by the program counter.

See token.go for the token/precedence table, expr.go/stmt.go/decl.go for
the single-pass generator, and vm.go for the interpreter.
*/
package main
