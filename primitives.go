package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// peekArgs reads n argument words pushed by the call site without moving
// sp: primitives read their arguments the way the original does (sp-relative
// indexing), leaving the subsequent ADJ instruction the compiler already
// emits to discard them from the stack (spec.md §4.6, "host primitives").
// args[0] is the first argument the caller wrote (deepest on the stack);
// args[n-1] is the last (top of stack).
func (m *Machine) peekArgs(n int) ([]int64, error) {
	args := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := m.mem.loadWord(m.sp + i*wordSize)
		if err != nil {
			return nil, err
		}
		args[n-1-i] = v
	}
	return args, nil
}

// cString reads a NUL-terminated byte string out of VM memory at addr.
func (m *Machine) cString(addr int64) (string, error) {
	var sb strings.Builder
	for i := int64(0); ; i++ {
		b, err := m.mem.loadByte(int(addr + i))
		if err != nil {
			return "", err
		}
		if b == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// callPrimitive dispatches one host-primitive opcode, returning (result,
// halt, err). halt is true only for EXIT, at which point result is the
// process exit code.
func (m *Machine) callPrimitive(op Op) (int64, bool, error) {
	switch op {
	case OPEN:
		args, err := m.peekArgs(2)
		if err != nil {
			return 0, false, err
		}
		path, err := m.cString(args[0])
		if err != nil {
			return 0, false, err
		}
		f, err := os.OpenFile(path, hostOpenFlags(int(args[1])), 0644)
		if err != nil {
			return -1, false, nil
		}
		fd := m.nextfd
		m.nextfd++
		m.files[fd] = f
		return fd, false, nil

	case READ:
		args, err := m.peekArgs(3)
		if err != nil {
			return 0, false, err
		}
		fd, addr, n := args[0], args[1], int(args[2])
		buf := make([]byte, n)
		var got int
		var rerr error
		if f, ok := m.files[fd]; ok {
			got, rerr = f.Read(buf)
		} else if fd == 0 && m.stdin != nil {
			got, rerr = m.stdin.Read(buf)
		} else {
			return -1, false, nil
		}
		if rerr != nil && got == 0 {
			return 0, false, nil
		}
		for i := 0; i < got; i++ {
			if err := m.mem.storeByte(int(addr)+i, buf[i]); err != nil {
				return 0, false, err
			}
		}
		return int64(got), false, nil

	case CLOS:
		args, err := m.peekArgs(1)
		if err != nil {
			return 0, false, err
		}
		fd := args[0]
		if f, ok := m.files[fd]; ok {
			delete(m.files, fd)
			if f.Close() != nil {
				return -1, false, nil
			}
		}
		return 0, false, nil

	case PRTF:
		args, err := m.peekArgs(6)
		if err != nil {
			return 0, false, err
		}
		format, err := m.cString(args[0])
		if err != nil {
			return 0, false, err
		}
		n, err := m.printf(format, args[1:])
		if err != nil {
			return 0, false, err
		}
		return int64(n), false, nil

	case MALC:
		args, err := m.peekArgs(1)
		if err != nil {
			return 0, false, err
		}
		addr, err := m.mem.malloc(int(args[0]))
		if err != nil {
			return 0, false, nil
		}
		return int64(addr), false, nil

	case FREE:
		args, err := m.peekArgs(1)
		if err != nil {
			return 0, false, err
		}
		m.mem.free(int(args[0]))
		return 0, false, nil

	case MSET:
		args, err := m.peekArgs(3)
		if err != nil {
			return 0, false, err
		}
		if err := m.mem.memset(int(args[0]), int(args[1]), int(args[2])); err != nil {
			return 0, false, err
		}
		return args[0], false, nil

	case MCMP:
		args, err := m.peekArgs(3)
		if err != nil {
			return 0, false, err
		}
		d, err := m.mem.memcmp(int(args[0]), int(args[1]), int(args[2]))
		if err != nil {
			return 0, false, err
		}
		return int64(d), false, nil

	case EXIT:
		args, err := m.peekArgs(1)
		if err != nil {
			return 0, false, err
		}
		m.logf("exit(%d) cycle = %d", args[0], m.cycle)
		return args[0], true, nil
	}
	return 0, false, runtimeError{m.cycle, "unknown primitive"}
}

// hostOpenFlags translates the small set of POSIX open() flags c4 programs
// actually use into os package flags; c4 has no type checking so the flags
// argument arrives as a plain int (spec.md's "open/read/close" primitive
// contract).
func hostOpenFlags(flags int) int {
	const (
		oRDONLY = 0x0
		oWRONLY = 0x1
		oRDWR   = 0x2
		oCREAT  = 0x40
		oTRUNC  = 0x200
		oAPPEND = 0x400
	)
	out := 0
	switch flags & 0x3 {
	case oWRONLY:
		out = os.O_WRONLY
	case oRDWR:
		out = os.O_RDWR
	default:
		out = os.O_RDONLY
	}
	if flags&oCREAT != 0 {
		out |= os.O_CREATE
	}
	if flags&oTRUNC != 0 {
		out |= os.O_TRUNC
	}
	if flags&oAPPEND != 0 {
		out |= os.O_APPEND
	}
	return out
}

// printf emulates the small subset of C printf this subset's programs rely
// on: %d %u %c %s %x %% and a bare byte pass-through for anything else,
// consuming one word from args per verb. Up to six args are ever supplied,
// since the compiler always pads a printf call site to six (spec.md §4.3).
func (m *Machine) printf(format string, args []int64) (int, error) {
	var sb strings.Builder
	ai := 0
	next := func() int64 {
		if ai < len(args) {
			v := args[ai]
			ai++
			return v
		}
		return 0
	}
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 >= len(format) {
			sb.WriteByte(ch)
			continue
		}
		i++
		switch format[i] {
		case 'd':
			sb.WriteString(strconv.FormatInt(next(), 10))
		case 'u':
			sb.WriteString(strconv.FormatUint(uint64(next()), 10))
		case 'x':
			sb.WriteString(strconv.FormatInt(next(), 16))
		case 'c':
			sb.WriteByte(byte(next()))
		case 's':
			s, err := m.cString(next())
			if err != nil {
				return 0, err
			}
			sb.WriteString(s)
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(format[i])
		}
	}
	out := sb.String()
	n, err := fmt.Fprint(m.stdout, out)
	return n, err
}
