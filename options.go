package main

import "io"

// Option configures either a Compile call or a Machine (or both), mirroring
// the functional-options pattern used throughout this codebase's ancestry:
// a small interface plus concrete WithXxx constructors, flattened through
// Options so callers can build up a slice and pass it on unchanged.
type Option interface {
	applyCompiler(c *Compiler)
	applyMachine(m *Machine)
}

// baseOption gives a concrete option type a no-op default for whichever of
// the two apply methods it doesn't care about.
type baseOption struct{}

func (baseOption) applyCompiler(*Compiler) {}
func (baseOption) applyMachine(*Machine)   {}

// Options flattens a slice of options into one, exactly like gothird's
// VMOptions: nil and noption entries vanish, nested option-lists splice in,
// and a single surviving option is returned unwrapped.
func Options(opts ...Option) Option {
	var res optionList
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case optionList:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{ baseOption }

type optionList []Option

func (opts optionList) applyCompiler(c *Compiler) {
	for _, opt := range opts {
		if opt != nil {
			opt.applyCompiler(c)
		}
	}
}

func (opts optionList) applyMachine(m *Machine) {
	for _, opt := range opts {
		if opt != nil {
			opt.applyMachine(m)
		}
	}
}

// WithListing enables -s style source-listing output to w during Compile;
// it has no effect on a Machine.
func WithListing(w io.Writer) Option { return listingOption{w: w} }

type listingOption struct {
	baseOption
	w io.Writer
}

func (o listingOption) applyCompiler(c *Compiler) {
	c.listing = true
	c.lw = o.w
}

// WithTrace enables -d style per-instruction execution trace output to w;
// it has no effect on Compile.
func WithTrace(w io.Writer) Option { return traceOption{w: w} }

type traceOption struct {
	baseOption
	w io.Writer
}

func (o traceOption) applyMachine(m *Machine) {
	m.trace = true
	m.tw = o.w
}

// WithDump records w as the destination of the post-run register/memory
// dump. The Machine does not write the dump itself; main.go writes it with
// machineDumper after Run returns, successfully or not.
func WithDump(w io.Writer) Option { return dumpOption{w: w} }

type dumpOption struct {
	baseOption
	w io.Writer
}

func (o dumpOption) applyMachine(m *Machine) { m.dw = o.w }

// WithLogf installs a leveled logging callback (typically
// logio.Logger.Leveledf's return value). The Machine uses it for run-time
// diagnostic lines; Compile stores it but emits no lines through it.
func WithLogf(logf func(format string, args ...interface{})) Option { return logfOption{logf: logf} }

type logfOption struct {
	baseOption
	logf func(format string, args ...interface{})
}

func (o logfOption) applyCompiler(c *Compiler) { c.logf = o.logf }
func (o logfOption) applyMachine(m *Machine)   { m.logf = o.logf }

// WithPoolSize overrides the default heap and stack pool capacity
// (defaultPoolWords words each), mirroring the original's single poolsz
// used identically to size its separate data/stack pools.
func WithPoolSize(words int) Option { return poolSizeOption(words) }

type poolSizeOption int

func (poolSizeOption) applyCompiler(*Compiler) {}
func (o poolSizeOption) applyMachine(m *Machine) {
	m.heapWords = int(o)
	m.stackWords = int(o)
}

// WithInput sets the Reader the VM's read() primitive draws from for file
// descriptor 0, generalized from gothird's WithInput.
func WithInput(r io.Reader) Option { return inputOption{r: r} }

type inputOption struct {
	baseOption
	r io.Reader
}

func (o inputOption) applyMachine(m *Machine) { m.stdin = o.r }

// WithOutput sets the Writer the VM's printf() primitive writes to,
// generalized from gothird's WithOutput.
func WithOutput(w io.Writer) Option { return outputOption{w: w} }

type outputOption struct {
	baseOption
	w io.Writer
}

func (o outputOption) applyMachine(m *Machine) { m.stdout = o.w }

// WithArgs sets argv passed to main's bootstrap frame (spec.md §4.6).
func WithArgs(args []string) Option { return argsOption{args: args} }

type argsOption struct {
	baseOption
	args []string
}

func (o argsOption) applyMachine(m *Machine) { m.args = o.args }
