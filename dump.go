package main

import (
	"fmt"
	"io"
)

// machineDumper prints a post-run snapshot of a Machine, adapted from the
// vmDumper pattern used for -dump: registers first, then the data/heap/
// stack regions of the arena.
type machineDumper struct {
	m   *Machine
	out io.Writer
}

func (d machineDumper) dump() {
	fmt.Fprintf(d.out, "# Machine Dump\n")
	fmt.Fprintf(d.out, "  pc=%d sp=%d bp=%d a=%d cycle=%d\n", d.m.pc, d.m.sp, d.m.bp, d.m.a, d.m.cycle)
	fmt.Fprintf(d.out, "  data:  [0, %d)\n", d.m.mem.heapBase)
	fmt.Fprintf(d.out, "  heap:  [%d, %d) top=%d\n", d.m.mem.heapBase, d.m.mem.heapCeil, d.m.mem.heapTop)
	fmt.Fprintf(d.out, "  stack: [%d, %d) sp=%d\n", d.m.mem.stackBase, len(d.m.mem.bytes), d.m.sp)
	if n := len(d.m.mem.allocated); n > 0 {
		fmt.Fprintf(d.out, "  live allocations: %d\n", n)
	}
}
