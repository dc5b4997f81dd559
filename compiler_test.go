package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource compiles and runs src, returning its stdout and exit code.
func runSource(t *testing.T, src string) (string, int) {
	t.Helper()
	prog, err := Compile(t.Name(), []byte(src))
	require.NoError(t, err)

	var out bytes.Buffer
	m := New(prog, WithOutput(&out))
	code, err := m.Run(context.Background())
	require.NoError(t, err)
	return out.String(), code
}

func TestReturnConstant(t *testing.T) {
	_, code := runSource(t, `int main() { return 42; }`)
	assert.Equal(t, 42, code)
}

func TestSumToTen(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			int i; int sum;
			i = 0; sum = 0;
			while (i <= 10) {
				sum = sum + i;
				i = i + 1;
			}
			return sum;
		}
	`)
	assert.Equal(t, 55, code)
}

func TestFibonacciRecursive(t *testing.T) {
	_, code := runSource(t, `
		int fib(int n) {
			if (n <= 1) return n;
			return fib(n - 1) + fib(n - 2);
		}
		int main() { return fib(10); }
	`)
	assert.Equal(t, 55, code)
}

func TestPrintf(t *testing.T) {
	out, code := runSource(t, `
		int main() {
			printf("hi\n");
			return 0;
		}
	`)
	assert.Equal(t, "hi\n", out)
	assert.Equal(t, 0, code)
}

func TestEnumSum(t *testing.T) {
	_, code := runSource(t, `
		enum { A, B, C };
		int main() { return A + B + C + 8; }
	`)
	assert.Equal(t, 11, code)
}

func TestMallocAndPointerArithmetic(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			int *p;
			p = malloc(3 * sizeof(int));
			*p = 3;
			*(p + 1) = 3;
			*(p + 2) = 4;
			free(p);
			return *p + *(p + 1) + *(p + 2);
		}
	`)
	assert.Equal(t, 10, code)
}

func TestIfElse(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			int x;
			x = 5;
			if (x > 3) {
				return 1;
			} else {
				return 0;
			}
		}
	`)
	assert.Equal(t, 1, code)
}

func TestTernaryAndLogical(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			int a; int b;
			a = 1; b = 0;
			return (a && !b) ? 7 : 3;
		}
	`)
	assert.Equal(t, 7, code)
}

func TestPrefixPostfixIncDec(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			int x; int y;
			x = 5;
			y = x++;
			y = y + ++x;
			return y;
		}
	`)
	// x=5; y=x++ -> y=5, x=6; ++x -> x=7, y=5+7=12
	assert.Equal(t, 12, code)
}

func TestCharArrayIndexing(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			char *s;
			s = "abc";
			return s[0] + s[1] + s[2];
		}
	`)
	assert.Equal(t, 'a'+'b'+'c', code)
}

func TestGlobalVariables(t *testing.T) {
	_, code := runSource(t, `
		int counter;
		int bump() { counter = counter + 1; return counter; }
		int main() {
			bump(); bump();
			return bump();
		}
	`)
	assert.Equal(t, 3, code)
}

func TestCompileErrorUndefinedVariable(t *testing.T) {
	_, err := Compile("bad", []byte(`int main() { return x; }`))
	require.Error(t, err)
	var ce compileError
	require.ErrorAs(t, err, &ce)
}

func TestCompileErrorMissingMain(t *testing.T) {
	_, err := Compile("nomain", []byte(`int foo() { return 1; }`))
	require.Error(t, err)
}

func TestSizeofPointerVsChar(t *testing.T) {
	_, code := runSource(t, `
		int main() {
			return sizeof(int) + sizeof(char) + sizeof(int *);
		}
	`)
	assert.Equal(t, wordSize+1+wordSize, code)
}

// Each of these mixes two operators from the same precedence class, which
// only stays left-associative if the infix loop recurses the right operand
// at the level above the whole class, not at the next token value.
func TestSameClassOperatorLeftAssociativity(t *testing.T) {
	_, code := runSource(t, `int main() { return 6 * 4 / 3; }`)
	assert.Equal(t, 8, code, "(6*4)/3 == 8, not 6*(4/3) == 6")

	_, code = runSource(t, `int main() { return 8 % 3 * 2; }`)
	assert.Equal(t, 4, code, "(8%3)*2 == 4, not 8%(3*2) == 8")

	_, code = runSource(t, `int main() { return 1 << 8 >> 3; }`)
	assert.Equal(t, 32, code, "(1<<8)>>3 == 32, not 1<<(8>>3) == 2")

	_, code = runSource(t, `
		int main() {
			int a; int b; int c;
			a = 2; b = 2; c = 3;
			return a == b != c;
		}
	`)
	assert.Equal(t, 1, code, "(a==b)!=c == 1!=3 == 1, not a==(b!=c) == 2==1 == 0")

	_, code = runSource(t, `
		int main() {
			int a; int b; int c;
			a = 5; b = 3; c = 1;
			return a < b <= c;
		}
	`)
	assert.Equal(t, 1, code, "(a<b)<=c == 0<=1 == 1, not a<(b<=c) == 5<0 == 0")
}
