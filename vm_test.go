package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineArgcArgv(t *testing.T) {
	prog, err := Compile(t.Name(), []byte(`
		int main(int argc, int argv) {
			return argc;
		}
	`))
	require.NoError(t, err)

	m := New(prog, WithArgs([]string{"a", "b", "c"}))
	code, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestMachineExitPrimitive(t *testing.T) {
	prog, err := Compile(t.Name(), []byte(`
		int main() {
			exit(7);
			return 1;
		}
	`))
	require.NoError(t, err)

	m := New(prog)
	code, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestMachineDivisionByZero(t *testing.T) {
	prog, err := Compile(t.Name(), []byte(`
		int main() {
			int x;
			x = 0;
			return 1 / x;
		}
	`))
	require.NoError(t, err)

	m := New(prog)
	_, err = m.Run(context.Background())
	require.Error(t, err)
}

func TestArenaMallocFreeReuse(t *testing.T) {
	a := newArena(nil, 16, 16)
	p1, err := a.malloc(8)
	require.NoError(t, err)
	a.free(p1)
	p2, err := a.malloc(8)
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "freed block should be reused by a same-size malloc")
}

func TestArenaOutOfMemory(t *testing.T) {
	a := newArena(nil, 1, 1)
	_, err := a.malloc(1 * wordSize)
	require.NoError(t, err)
	_, err = a.malloc(wordSize)
	require.Error(t, err)
}

func TestArenaMemsetMemcmp(t *testing.T) {
	a := newArena(nil, 4, 4)
	require.NoError(t, a.memset(0, 'x', 4))
	d, err := a.memcmp(0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}
