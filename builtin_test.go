package exprvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Value
	}{
		{"powint", "pow(2, 10)", Int(1024)},
		{"powzero", "pow(5, 0)", Int(1)},
		{"powwrap", "pow(2, 64)", Int(0)},
		{"pownegexp", "pow(2, -1)", Float(0.5)},
		{"powfloat", "pow(2.0, 3)", Float(8)},
		{"powbool", "pow(true, 5)", Float(1)},
		{"sum", "sum(1, 2, 3.5)", Float(6.5)},
		{"sumints", "sum(1, 2)", Float(3)},
		{"sumempty", "sum()", Float(0)},
		{"sumbools", "sum(true, true, false)", Float(2)},
		{"min", "min(3, 1.5, 2)", Float(1.5)},
		{"minint", "min(3, 1.5, -2)", Int(-2)},
		{"max", "max(3, 1.5)", Int(3)},
		{"maxfirst", "max(2, 2.0)", Int(2)},
		{"minone", "min(true)", Bool(true)},
		{"minempty", "min()", Float(math.Inf(1))},
		{"maxempty", "max()", Float(math.Inf(-1))},
		{"sqrt", "sqrt(16)", Float(4)},
		{"sqrtbool", "sqrt(true)", Float(1)},
		{"sin", "sin(0)", Float(0)},
		{"cos", "cos(0)", Float(1)},
		{"atan", "atan(0)", Float(0)},
		{"cosh", "cosh(0)", Float(1)},
		{"exp0", "exp(0)", Float(1)},
		{"log2", "log2(8)", Float(3)},
		{"expbig", "exp(1000)", Float(math.Inf(1))},
		{"lnzero", "ln(0)", Float(math.Inf(-1))},
	}
	regs := []struct {
		name string
		r    func() *Registry
	}{
		{"default", DefaultRegistry},
		{"precise", func() *Registry { return PreciseRegistry(256) }},
	}
	for _, reg := range regs {
		t.Run(reg.name, func(t *testing.T) {
			r := reg.r()
			for _, c := range cases {
				got, err := Evaluate(c.src, r)
				if assert.NoError(t, err, "%s: %q", c.name, c.src) {
					assert.Equal(t, c.want, got, "%s: %q", c.name, c.src)
				}
			}
		})
	}
}

func TestBuiltinsNaN(t *testing.T) {
	srcs := []string{
		"max(1, 0.0/0, 3)",
		"min(0.0/0, 1)",
		"ln(-1)",
		"sqrt(-1)",
		"pow(-8, 0.5)",
		"acos(2)",
	}
	for _, r := range []*Registry{DefaultRegistry(), PreciseRegistry(128)} {
		for _, src := range srcs {
			got, err := Evaluate(src, r)
			require.NoError(t, err, "%q", src)
			assert.Equal(t, KindFloat, got.Kind(), "%q", src)
			assert.True(t, math.IsNaN(got.AsFloat()), "%q gave %v", src, got)
		}
	}
}

func TestPreciseMatchesFloat64(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"PI", math.Pi},
		{"E", math.E},
		{"exp(1)", math.E},
		{"exp(-2.5)", math.Exp(-2.5)},
		{"ln(10)", math.Ln10},
		{"ln(E)", 1},
		{"log10(1000)", 3},
		{"log2(0.125)", -3},
		{"pow(2, 0.5)", math.Sqrt2},
		{"pow(10, 2.5)", math.Pow(10, 2.5)},
		{"pow(1.5, 40)", math.Pow(1.5, 40)},
	}
	def := DefaultRegistry()
	precise := PreciseRegistry(200)
	for _, c := range cases {
		fast, err := Evaluate(c.src, def)
		require.NoError(t, err, "%q", c.src)
		slow, err := Evaluate(c.src, precise)
		require.NoError(t, err, "%q", c.src)
		assert.InEpsilon(t, c.want, fast.AsFloat(), 1e-15, "float64 %q", c.src)
		assert.InEpsilon(t, c.want, slow.AsFloat(), 1e-15, "precise %q", c.src)
	}
}

func TestPreciseZeroIsDefault(t *testing.T) {
	a, b := DefaultRegistry(), PreciseRegistry(0)
	assert.Equal(t, a.Vars(), b.Vars())
	assert.Equal(t, a.Funcs(), b.Funcs())
	for _, src := range []string{"PI", "E", "exp(3.3)", "ln(7)", "pow(3, 0.7)"} {
		x, err := Evaluate(src, a)
		require.NoError(t, err)
		y, err := Evaluate(src, b)
		require.NoError(t, err)
		assert.Equal(t, x, y, "%q", src)
	}
}

func TestIpow(t *testing.T) {
	cases := []struct {
		x, n, want int64
	}{
		{0, 0, 1},
		{7, 0, 1},
		{0, 5, 0},
		{3, 4, 81},
		{-2, 3, -8},
		{-1, 1001, -1},
		{3, 40, 12157665459056928801 - 1<<64},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ipow(c.x, c.n), "%d^%d", c.x, c.n)
	}
}
