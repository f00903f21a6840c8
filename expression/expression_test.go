package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cozodb/cozo-eval/value"
)

func TestLiteralHasNoChildren(t *testing.T) {
	l := NewLiteral(value.Int(1))
	require.Empty(t, l.Children())
	_, err := l.WithChildren(NewLiteral(value.Int(2)))
	require.Error(t, err)
}

func TestBinarySpecializedWithChildrenWrongArity(t *testing.T) {
	n := NewAdd(NewLiteral(value.Int(1)), NewLiteral(value.Int(2)))
	_, err := n.WithChildren(NewLiteral(value.Int(3)))
	require.Error(t, err)
}

func TestBinarySpecializedWithChildrenRebuilds(t *testing.T) {
	n := NewAdd(NewLiteral(value.Int(1)), NewLiteral(value.Int(2)))
	rebuilt, err := n.WithChildren(NewLiteral(value.Int(9)), NewLiteral(value.Int(10)))
	require.NoError(t, err)
	add, ok := rebuilt.(*Add)
	require.True(t, ok)
	require.Equal(t, value.Int(9), add.Left.(*Literal).Val)
	require.Equal(t, value.Int(10), add.Right.(*Literal).Val)
}

func TestDictExprChildrenOrderMatchesSortedKeys(t *testing.T) {
	d := NewDictExpr(map[string]Expression{
		"b": NewLiteral(value.Int(2)),
		"a": NewLiteral(value.Int(1)),
	})
	children := d.Children()
	require.Len(t, children, 2)
	require.Equal(t, value.Int(1), children[0].(*Literal).Val)
	require.Equal(t, value.Int(2), children[1].(*Literal).Val)

	rebuilt, err := d.WithChildren(NewLiteral(value.Int(100)), NewLiteral(value.Int(200)))
	require.NoError(t, err)
	de := rebuilt.(*DictExpr)
	require.Equal(t, value.Int(100), de.Entries["a"].(*Literal).Val)
	require.Equal(t, value.Int(200), de.Entries["b"].(*Literal).Val)
}

func TestSwitchChildrenAndWithChildrenRoundTrip(t *testing.T) {
	sw := NewSwitch(NewLiteral(value.Int(1)), []SwitchArm{
		{Match: NewLiteral(value.Int(1)), Branch: NewLiteral(value.Text("one"))},
	}, NewLiteral(value.Text("other")))
	children := sw.Children()
	require.Len(t, children, 4)

	rebuilt, err := sw.WithChildren(children...)
	require.NoError(t, err)
	sw2 := rebuilt.(*Switch)
	require.Equal(t, sw.Scrutinee, sw2.Scrutinee)
	require.Equal(t, sw.Default, sw2.Default)
}

func TestApplyAggWithChildrenWrongArity(t *testing.T) {
	agg := NewApplyAgg(addOp, []Expression{NewLiteral(value.Int(1))}, []Expression{NewLiteral(value.Int(2))})
	_, err := agg.WithChildren(NewLiteral(value.Int(1)))
	require.Error(t, err)
}

func TestFieldAccAndIdxAccStringForm(t *testing.T) {
	fa := NewFieldAcc("a", NewLiteral(value.Int(1)))
	require.Equal(t, "1.a", fa.String())

	ia := NewIdxAcc(2, NewLiteral(value.Int(1)))
	require.Equal(t, "1[2]", ia.String())
}
