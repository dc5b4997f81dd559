package main

import "fmt"

// compileError reports a fatal parse/semantic error at a source line, per
// spec.md §7. All compile-time errors are fatal: the first one terminates
// compilation.
type compileError struct {
	line int
	msg  string
}

func (err compileError) Error() string {
	return fmt.Sprintf("%d: %s", err.line, err.msg)
}

func (c *Compiler) errorf(format string, args ...interface{}) {
	panic(compileError{line: c.lex.line, msg: fmt.Sprintf(format, args...)})
}

// runtimeError reports a fatal VM fault, carrying the cycle count at which
// it occurred (spec.md §7's "unknown instruction" taxonomy entry).
type runtimeError struct {
	cycle int64
	msg   string
}

func (err runtimeError) Error() string {
	return fmt.Sprintf("%s (cycle %d)", err.msg, err.cycle)
}

// oomError indicates that a fixed memory pool would be exceeded, per
// spec.md §5: "exceeding them is a fatal error."
type oomError struct{ pool string }

func (err oomError) Error() string { return fmt.Sprintf("out of memory: %s pool exhausted", err.pool) }
