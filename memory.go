package main

import "encoding/binary"

// defaultPoolWords seeds the VM's heap and stack pool capacities. The value
// is the original's 256*1024-word poolsz, used identically to size its
// separate data/stack pools (see SPEC_FULL.md's supplemented features).
const defaultPoolWords = 256 * 1024

// memBlock is one free-list entry used by malloc/free.
type memBlock struct {
	addr int
	size int
}

// arena is the VM's unified byte-addressable memory: the compiled data
// segment at the low end, a malloc/free heap immediately above it, and the
// runtime stack at the high end. All three share one address space so that
// the address of a local, a global, or a malloc'd block can be passed to
// read/memset/memcmp/LI/LC/SI/SC interchangeably — exactly as in the
// original's single flat process address space (spec.md §9, "Raw address
// bytecode"). Capacity is fixed at construction: unlike gothird's
// (*VM).grow, which lazily extends a single region in chunks, this arena's
// three regions are pre-sized once, because growing any one of them in
// place would shift the addresses of the other two that are already baked
// into running bytecode and live stack frames.
type arena struct {
	bytes []byte

	heapBase  int
	heapTop   int
	heapCeil  int
	freeList  []memBlock
	allocated map[int]int

	stackBase int
}

func newArena(data []byte, heapWords, stackWords int) *arena {
	heapBase := len(data)
	heapBytes := heapWords * wordSize
	stackBytes := stackWords * wordSize

	a := &arena{
		bytes:     make([]byte, heapBase+heapBytes+stackBytes),
		heapBase:  heapBase,
		heapTop:   heapBase,
		heapCeil:  heapBase + heapBytes,
		stackBase: heapBase + heapBytes,
		allocated: make(map[int]int),
	}
	copy(a.bytes, data)
	return a
}

// stackTop is the initial SP/BP value: the address one past the end of the
// arena, so the first push lands in the last valid byte range.
func (a *arena) stackTop() int { return len(a.bytes) }

func (a *arena) checkAddr(addr, n int) error {
	if addr < 0 || n < 0 || addr+n > len(a.bytes) {
		return oomError{"memory"}
	}
	return nil
}

func (a *arena) loadByte(addr int) (byte, error) {
	if err := a.checkAddr(addr, 1); err != nil {
		return 0, err
	}
	return a.bytes[addr], nil
}

func (a *arena) storeByte(addr int, v byte) error {
	if err := a.checkAddr(addr, 1); err != nil {
		return err
	}
	a.bytes[addr] = v
	return nil
}

func (a *arena) loadWord(addr int) (int64, error) {
	if err := a.checkAddr(addr, wordSize); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(a.bytes[addr:])), nil
}

func (a *arena) storeWord(addr int, v int64) error {
	if err := a.checkAddr(addr, wordSize); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(a.bytes[addr:], uint64(v))
	return nil
}

// malloc allocates n bytes from the heap region: first-fit against the
// free list, falling back to bump allocation from heapTop.
func (a *arena) malloc(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	for i, b := range a.freeList {
		if b.size >= n {
			addr := b.addr
			if b.size == n {
				a.freeList = append(a.freeList[:i], a.freeList[i+1:]...)
			} else {
				a.freeList[i] = memBlock{addr: addr + n, size: b.size - n}
			}
			a.allocated[addr] = n
			return addr, nil
		}
	}
	addr := a.heapTop
	if addr+n > a.heapCeil {
		return 0, oomError{"heap"}
	}
	a.heapTop += n
	a.allocated[addr] = n
	return addr, nil
}

// free returns addr's block to the free list. Freeing an address malloc
// never returned is a no-op: this subset's programs have no way to probe
// allocator internals, so there is nothing to protect against here beyond
// what the language itself already prevents.
func (a *arena) free(addr int) {
	size, ok := a.allocated[addr]
	if !ok {
		return
	}
	delete(a.allocated, addr)
	a.freeList = append(a.freeList, memBlock{addr, size})
}

func (a *arena) memset(addr, c, n int) error {
	if err := a.checkAddr(addr, n); err != nil {
		return err
	}
	b := byte(c)
	for i := 0; i < n; i++ {
		a.bytes[addr+i] = b
	}
	return nil
}

func (a *arena) memcmp(p1, p2, n int) (int, error) {
	if err := a.checkAddr(p1, n); err != nil {
		return 0, err
	}
	if err := a.checkAddr(p2, n); err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		if d := int(a.bytes[p1+i]) - int(a.bytes[p2+i]); d != 0 {
			return d, nil
		}
	}
	return 0, nil
}
