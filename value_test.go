package exprvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConversions(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	cases := []struct {
		name string
		v    Value
		kind Kind
		f    float64
		i    int64
		b    bool
	}{
		{"zero", Value{}, KindInt, 0, 0, false},
		{"int", Int(3), KindInt, 3, 3, true},
		{"negint", Int(-7), KindInt, -7, -7, true},
		{"float", Float(2.7), KindFloat, 2.7, 2, true},
		{"negfloat", Float(-2.5), KindFloat, -2.5, -3, true},
		{"fraction", Float(0.25), KindFloat, 0.25, 0, true},
		{"negzero", Float(math.Copysign(0, -1)), KindFloat, 0, 0, false},
		{"huge", Float(1e300), KindFloat, 1e300, math.MaxInt64, true},
		{"tiny", Float(-1e300), KindFloat, -1e300, math.MinInt64, true},
		{"inf", Float(inf), KindFloat, inf, math.MaxInt64, true},
		{"neginf", Float(-inf), KindFloat, -inf, math.MinInt64, true},
		{"true", Bool(true), KindBool, 1, 1, true},
		{"false", Bool(false), KindBool, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.kind, c.v.Kind())
			assert.Equal(t, c.f, c.v.AsFloat())
			assert.Equal(t, c.i, c.v.AsInt())
			assert.Equal(t, c.b, c.v.AsBool())
		})
	}
	t.Run("nan", func(t *testing.T) {
		v := Float(nan)
		assert.True(t, math.IsNaN(v.AsFloat()))
		assert.Equal(t, int64(0), v.AsInt())
		assert.False(t, v.AsBool())
	})
}

func TestValueEqual(t *testing.T) {
	nan := Float(math.NaN())
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", Int(3), Int(3), true},
		{"intsne", Int(3), Int(4), false},
		{"floats", Float(0.5), Float(0.5), true},
		{"zeros", Float(0), Float(math.Copysign(0, -1)), true},
		{"bools", Bool(true), Bool(true), true},
		{"boolsne", Bool(true), Bool(false), false},
		{"intfloat", Int(3), Float(3), true},
		{"floatint", Float(3), Int(3), true},
		{"intfraction", Int(3), Float(3.5), false},
		{"intinf", Int(math.MaxInt64), Float(math.Inf(1)), false},
		{"intbig", Int(math.MaxInt64), Float(1 << 63), false},
		{"intmin", Int(math.MinInt64), Float(-(1 << 63)), true},
		{"nan", nan, nan, false},
		{"intnan", Int(0), nan, false},
		{"boolint", Bool(true), Int(1), true},
		{"intbool", Int(0), Bool(false), true},
		{"boolintne", Bool(true), Int(2), false},
		{"boolfloat", Bool(true), Float(1), true},
		{"floatbool", Float(0.5), Bool(true), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Equal(c.b), "%#v == %#v", c.a, c.b)
			assert.Equal(t, c.want, c.b.Equal(c.a), "%#v == %#v", c.b, c.a)
		})
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v      Value
		s, gos string
	}{
		{Int(-3), "-3", "Int(-3)"},
		{Float(0.5), "0.5", "Float(0.5)"},
		{Float(2), "2", "Float(2)"},
		{Float(1e21), "1e+21", "Float(1e+21)"},
		{Float(math.Inf(-1)), "-Inf", "Float(-Inf)"},
		{Bool(true), "true", "Bool(true)"},
		{Bool(false), "false", "Bool(false)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.s, c.v.String())
		assert.Equal(t, c.gos, c.v.GoString())
	}
}

func TestBinaryApply(t *testing.T) {
	cases := []struct {
		name string
		op   BinaryOp
		a, b Value
		want Value
	}{
		{"addint", Add, Int(2), Int(3), Int(5)},
		{"addwrap", Add, Int(math.MaxInt64), Int(1), Int(math.MinInt64)},
		{"addmixed", Add, Int(2), Float(0.5), Float(2.5)},
		{"addbool", Add, Bool(true), Int(1), Float(2)},
		{"subint", Sub, Int(2), Int(3), Int(-1)},
		{"mulint", Mul, Int(-4), Int(3), Int(-12)},
		{"mulfloat", Mul, Float(1.5), Float(2), Float(3)},
		{"divint", Div, Int(7), Int(2), Int(3)},
		{"divtrunc", Div, Int(-7), Int(2), Int(-3)},
		{"divmin", Div, Int(math.MinInt64), Int(-1), Int(math.MinInt64)},
		{"divfloat", Div, Float(7), Int(2), Float(3.5)},
		{"divfloatzero", Div, Float(1), Int(0), Float(math.Inf(1))},
		{"divnegzero", Div, Int(-1), Float(0), Float(math.Inf(-1))},
		{"modint", Mod, Int(7), Int(3), Int(1)},
		{"modneg", Mod, Int(-7), Int(3), Int(-1)},
		{"modfloat", Mod, Float(7.5), Int(2), Float(1.5)},
		{"bitand", BitAnd, Int(6), Int(3), Int(2)},
		{"bitor", BitOr, Int(6), Int(3), Int(7)},
		{"bitxor", BitXor, Int(6), Int(3), Int(5)},
		{"bitfloat", BitOr, Float(4.9), Bool(true), Int(5)},
		{"land", LogicalAnd, Int(2), Float(0.1), Bool(true)},
		{"landfalse", LogicalAnd, Bool(true), Int(0), Bool(false)},
		{"lor", LogicalOr, Int(0), Bool(false), Bool(false)},
		{"lortrue", LogicalOr, Float(math.NaN()), Int(-1), Bool(true)},
		{"eq", Equal, Int(1), Float(1), Bool(true)},
		{"eqbool", Equal, Bool(true), Float(1), Bool(true)},
		{"ne", NotEqual, Int(1), Float(1.5), Bool(true)},
		{"nenan", NotEqual, Float(math.NaN()), Float(math.NaN()), Bool(true)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.op.Apply(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got, "%#v %v %#v", c.a, c.op, c.b)
		})
	}
}

func TestBinaryApplyNaN(t *testing.T) {
	got, err := Mod.Apply(Float(1), Int(0))
	require.NoError(t, err)
	assert.Equal(t, KindFloat, got.Kind())
	assert.True(t, math.IsNaN(got.AsFloat()))
}

func TestBinaryApplyDomain(t *testing.T) {
	for _, op := range []BinaryOp{Div, Mod} {
		_, err := op.Apply(Int(5), Int(0))
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, Int(5), de.X)
		assert.Equal(t, op.String(), de.Op)
		assert.Contains(t, err.Error(), "division by zero")
	}
}

func TestUnaryApply(t *testing.T) {
	cases := []struct {
		name string
		op   UnaryOp
		a    Value
		want Value
	}{
		{"negint", Neg, Int(3), Int(-3)},
		{"negmin", Neg, Int(math.MinInt64), Int(math.MinInt64)},
		{"negfloat", Neg, Float(2.5), Float(-2.5)},
		{"negtrue", Neg, Bool(true), Int(-1)},
		{"negfalse", Neg, Bool(false), Int(0)},
		{"notzero", Not, Int(0), Int(-1)},
		{"notint", Not, Int(5), Int(-6)},
		{"notfloat", Not, Float(2.5), Int(-3)},
		{"nottrue", Not, Bool(true), Int(-2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.op.Apply(c.a))
		})
	}
}
