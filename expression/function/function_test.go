package function

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cozodb/cozo-eval/value"
)

func TestArithmeticPromotion(t *testing.T) {
	var testCases = []struct {
		name     string
		op       Operator
		left     value.Value
		right    value.Value
		expected value.Value
	}{
		{"int + int stays int", Add(), value.Int(123), value.Int(457), value.Int(580)},
		{"int + float promotes to float", Add(), value.Int(123), value.Float(457.1), value.Float(580.1)},
		{"int / int truncates", Div(), value.Int(1), value.Int(10), value.Int(0)},
		{"int % int", Mod(), value.Int(7), value.Int(3), value.Int(1)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.EvalTwoNonNull(tt.left, tt.right)
			require.NoError(t, err)
			require.True(t, tt.expected.Equal(got), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestDivByZero(t *testing.T) {
	_, err := Div().EvalTwoNonNull(value.Int(1), value.Int(0))
	require.Error(t, err)

	v, err := Div().EvalTwoNonNull(value.Float(1), value.Float(0))
	require.NoError(t, err)
	f, _ := v.AsFloat()
	require.True(t, math.IsInf(f, 1))
}

func TestStrCatRequiresText(t *testing.T) {
	v, err := StrCat().EvalTwoNonNull(value.Text("123"), value.Text("457.1"))
	require.NoError(t, err)
	require.Equal(t, value.Text("123457.1"), v)

	_, err = StrCat().EvalTwoNonNull(value.Text("a"), value.Int(1))
	require.Error(t, err)
}

func TestComparisonCrossKindFails(t *testing.T) {
	_, err := Gt().EvalTwoNonNull(value.Int(1), value.Text("a"))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "cannot apply"))
}

func TestComparisonText(t *testing.T) {
	v, err := Gt().EvalTwoNonNull(value.Text("c"), value.Text("d"))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)
}

func TestIsNullNeverFails(t *testing.T) {
	v, err := IsNull().EvalOne(value.Null())
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)

	v, err = NotNull().EvalOne(value.Null())
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	op, ok := r.Lookup("+")
	require.True(t, ok)
	require.Equal(t, "+", op.Name)

	_, ok = r.Lookup("no-such-op")
	require.False(t, ok)
}

func TestLoadUserOperators(t *testing.T) {
	doc := `
- name: least
  kernel: min
  non_null_args: true
`
	ops, err := LoadUserOperators(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, "least", ops[0].Name)

	v, err := ops[0].EvalTwoNonNull(value.Int(3), value.Int(1))
	require.NoError(t, err)
	require.Equal(t, value.Int(1), v)
}

func TestLoadUserOperatorsUnknownKernel(t *testing.T) {
	doc := `
- name: bogus
  kernel: nope
`
	_, err := LoadUserOperators(strings.NewReader(doc))
	require.Error(t, err)
}
