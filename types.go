package main

// cType is the compiler's type representation: pointer depth is encoded
// additively onto a base type, per spec.md §3 and the "Type encoding by
// addition" design note (§9). A pointer to T has type T+PTR; pointer to
// pointer adds another PTR.
type cType int

const (
	CHAR cType = iota
	INT
	PTR
)

// elemSize returns the size in bytes of one element of type t: one byte for
// CHAR, one machine word otherwise.
func (t cType) elemSize() int {
	if t == CHAR {
		return 1
	}
	return wordSize
}

// isPointer reports whether t is a pointer of any depth (t >= PTR).
func (t cType) isPointer() bool { return t > INT }

// needsScale reports whether arithmetic on a value of type t must scale its
// operand by wordSize: true for any pointer whose pointee is itself
// word-sized or larger (t > PTR), per the design note's observable
// contract. A plain char* (t == PTR) scales by 1, i.e. not at all.
func (t cType) needsScale() bool { return t > PTR }
