package main

import (
	"context"
	"flag"
	"os"
	"time"

	"c4go/internal/logio"
)

func main() {
	var (
		listing  bool
		trace    bool
		dump     bool
		memLimit uint
		timeout  time.Duration
	)
	flag.BoolVar(&listing, "s", false, "print a source/bytecode listing instead of running")
	flag.BoolVar(&trace, "d", false, "trace each instruction executed")
	flag.BoolVar(&dump, "dump", false, "print a post-run memory dump")
	flag.UintVar(&memLimit, "mem-limit", 0, "override the heap/stack pool size, in words")
	flag.DurationVar(&timeout, "timeout", 0, "abort execution after the given duration")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	args := flag.Args()
	if len(args) == 0 {
		log.Errorf("usage: c4 [-s] [-d] [-dump] <source-file> [args...]")
		return
	}
	path, progArgs := args[0], args[1:]

	src, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	copts := []Option{WithLogf(log.Leveledf("TRACE"))}
	if listing {
		copts = append(copts, WithListing(os.Stdout))
	}
	prog, err := Compile(path, src, copts...)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	if listing {
		return
	}

	mopts := []Option{
		WithLogf(log.Leveledf("TRACE")),
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
		WithArgs(progArgs),
	}
	if trace {
		mopts = append(mopts, WithTrace(os.Stderr))
	}
	if memLimit != 0 {
		mopts = append(mopts, WithPoolSize(int(memLimit)))
	}
	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		mopts = append(mopts, WithDump(lw))
	}

	m := New(prog, mopts...)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	code, err := m.Run(ctx)
	if m.dw != nil {
		machineDumper{m: m, out: m.dw}.dump()
	}
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	os.Exit(code)
}
