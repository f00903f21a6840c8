package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	var testCases = []struct {
		name     string
		left     Value
		right    Value
		expected bool
	}{
		{"null equals null", Null(), Null(), true},
		{"null does not equal zero", Null(), Int(0), false},
		{"ints equal", Int(3), Int(3), true},
		{"int does not equal float even when numerically equal", Int(3), Float(3), false},
		{"text equal", Text("a"), Text("a"), true},
		{"lists equal elementwise", List([]Value{Int(1), Text("a")}), List([]Value{Int(1), Text("a")}), true},
		{"lists differ in length", List([]Value{Int(1)}), List([]Value{Int(1), Int(2)}), false},
		{
			"dicts equal regardless of construction order",
			DictVal(map[string]Value{"a": Int(1), "b": Int(2)}),
			DictVal(map[string]Value{"b": Int(2), "a": Int(1)}),
			true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.left.Equal(tt.right))
		})
	}
}

func TestCompareMixedNumeric(t *testing.T) {
	c, ok := Int(3).Compare(Float(3.5))
	require.True(t, ok)
	require.Equal(t, -1, c)

	c, ok = Float(4.0).Compare(Int(4))
	require.True(t, ok)
	require.Equal(t, 0, c)
}

func TestCompareIncompatibleKinds(t *testing.T) {
	_, ok := Text("a").Compare(Int(1))
	require.False(t, ok)
}

func TestDictRemoveDoesNotMutateReceiver(t *testing.T) {
	d := NewDict(map[string]Value{"a": Int(1), "b": Int(2)})
	nd, v, ok := d.Remove("a")
	require.True(t, ok)
	require.Equal(t, Int(1), v)
	require.Equal(t, 1, nd.Len())
	require.Equal(t, 2, d.Len())
}

func TestHashKeyStableAcrossDictConstructionOrder(t *testing.T) {
	a := DictVal(map[string]Value{"a": Int(1), "b": Int(2)})
	b := DictVal(map[string]Value{"b": Int(2), "a": Int(1)})
	ha, err := a.HashKey()
	require.NoError(t, err)
	hb, err := b.HashKey()
	require.NoError(t, err)
	require.Equal(t, ha, hb)
}

func TestStaticDoesNotAliasLists(t *testing.T) {
	l := []Value{Int(1), Int(2)}
	v := List(l)
	s := v.Static()
	l[0] = Int(99)
	sl, _ := s.AsList()
	if diff := cmp.Diff(Int(1), sl[0]); diff != "" {
		t.Fatalf("static value aliased backing slice: %s", diff)
	}
}
