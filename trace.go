package main

import "fmt"

// traceOp writes one -d style execution trace line: the cycle and the
// instruction about to run; register and stack state are not printed.
// Operand-bearing opcodes show their operand inline: traceOp runs after
// fetch has advanced pc past the opcode word but before fetchArg, so
// code[pc] is the operand.
func (m *Machine) traceOp(op Op) {
	if op.hasOperand() {
		arg := int64(0)
		if int(m.pc) < len(m.code) {
			arg = m.code[m.pc]
		}
		fmt.Fprintf(m.tw, "%d> %s %d\n", m.cycle, op, arg)
		return
	}
	fmt.Fprintf(m.tw, "%d> %s\n", m.cycle, op)
}
