package main

// idClass is the storage class of an identifier record (spec.md §3).
type idClass int

const (
	clsNone idClass = iota
	clsNum          // enum constant
	clsFun          // user-defined function
	clsSys          // host primitive
	clsGlo          // global variable
	clsLoc          // local variable or parameter
)

// ident is one entry in the linear symbol table. name is a string copy of
// the identifier's source text, not a view into the source buffer.
//
// hclass/htype/hval are save slots used to shadow a global identifier while
// compiling a function whose parameter or local reuses the same name; they
// are restored when the function body's closing brace is reached, before
// the caller consumes it. This is
// a one-deep scope stack implemented in place, per spec.md §9's
// "Symbol-table shadowing" design note.
type ident struct {
	name string
	hash uint64
	tok  Token // resolves to Id unless this is a pre-registered keyword/primitive

	class idClass
	typ   cType
	val   int

	hclass idClass
	htype  cType
	hval   int
}

// symTable is the linear, insertion-ordered identifier table described in
// spec.md §3: lookup scans from the start, insertion appends, and entries
// are never reordered or removed so that any index into the table remains
// stable for the life of a compile.
type symTable struct {
	ids []ident
}

// identHash implements the hash recurrence from spec.md §4.1 / the original
// lexer: start with the first character's code, fold in each subsequent
// character as hash = hash*147 + ch, and finalize with hash = hash<<6 + len.
func identHash(name string) uint64 {
	var h uint64
	for i := 0; i < len(name); i++ {
		if i == 0 {
			h = uint64(name[0])
		} else {
			h = h*147 + uint64(name[i])
		}
	}
	return h<<6 + uint64(len(name))
}

// lookup scans the table for name, returning its index or -1. Matching
// requires both a hash hit and a literal name comparison, per spec.md §4.1.
func (st *symTable) lookup(name string) int {
	hash := identHash(name)
	for i := range st.ids {
		if st.ids[i].hash == hash && st.ids[i].name == name {
			return i
		}
	}
	return -1
}

// intern returns the index of name's record, inserting a new Id-class entry
// at the end of the table if this is the first time name has been seen.
func (st *symTable) intern(name string) int {
	if i := st.lookup(name); i >= 0 {
		return i
	}
	st.ids = append(st.ids, ident{name: name, hash: identHash(name), tok: Id})
	return len(st.ids) - 1
}

func (st *symTable) get(i int) *ident { return &st.ids[i] }

// unshadowLocals restores every identifier still marked clsLoc back to its
// saved class/type/val, undoing the shadowing a just-finished function body
// applied to its parameters and locals (spec.md §4.5 step 2, and the
// invariant in §8: "after parsing each function body, no identifier record
// has class == Loc").
func (st *symTable) unshadowLocals() {
	for i := range st.ids {
		id := &st.ids[i]
		if id.class == clsLoc {
			id.class, id.typ, id.val = id.hclass, id.htype, id.hval
			id.hclass, id.htype, id.hval = clsNone, 0, 0
		}
	}
}
