package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cozodb/cozo-eval/value"
)

func evalRow(t *testing.T, e Expression, row ...value.Value) value.Value {
	v, err := RowEval(e, rowContext{row: row})
	require.NoError(t, err)
	return v
}

func TestRowEvalArithmeticSpecialized(t *testing.T) {
	e := NewAdd(NewTupleSetIdx(0), NewTupleSetIdx(1))
	got := evalRow(t, e, value.Int(123), value.Int(457))
	require.Equal(t, value.Int(580), got)
}

func TestRowEvalArithmeticNullPropagates(t *testing.T) {
	e := NewAdd(NewTupleSetIdx(0), NewTupleSetIdx(1))
	got := evalRow(t, e, value.Null(), value.Int(1))
	require.True(t, got.IsNull())
}

func TestRowEvalAndShortCircuit(t *testing.T) {
	// false && <unresolved> must never touch the row slot.
	e := NewAnd(NewLiteral(value.Bool(false)), NewTupleSetIdx(99))
	v, err := RowEval(e, rowContext{row: []value.Value{value.Int(1)}})
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)
}

func TestRowEvalOrShortCircuit(t *testing.T) {
	e := NewOr(NewLiteral(value.Bool(true)), NewTupleSetIdx(99))
	v, err := RowEval(e, rowContext{row: []value.Value{value.Int(1)}})
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}

func TestRowEvalCoalesce(t *testing.T) {
	e := NewCoalesce(NewTupleSetIdx(0), NewTupleSetIdx(1))
	got := evalRow(t, e, value.Null(), value.Int(7))
	require.Equal(t, value.Int(7), got)
}

func TestRowEvalIsNullUnary(t *testing.T) {
	e := NewIsNull(NewTupleSetIdx(0))
	got := evalRow(t, e, value.Null())
	require.Equal(t, value.Bool(true), got)
}

func TestRowEvalIfDispatch(t *testing.T) {
	e := NewIf(NewTupleSetIdx(0), NewTupleSetIdx(1), NewTupleSetIdx(2))
	got := evalRow(t, e, value.Bool(true), value.Int(1), value.Int(2))
	require.Equal(t, value.Int(1), got)
}

func TestRowEvalSwitchDispatch(t *testing.T) {
	sw := NewSwitch(NewTupleSetIdx(0), []SwitchArm{
		{Match: NewLiteral(value.Int(1)), Branch: NewLiteral(value.Text("one"))},
		{Match: NewLiteral(value.Int(2)), Branch: NewLiteral(value.Text("two"))},
	}, NewLiteral(value.Text("other")))
	got := evalRow(t, sw, value.Int(2))
	require.Equal(t, value.Text("two"), got)
}

func TestRowEvalFieldAccAndIdxAcc(t *testing.T) {
	d := value.DictVal(map[string]value.Value{"a": value.Int(1)})
	fa := NewFieldAcc("a", NewTupleSetIdx(0))
	got := evalRow(t, fa, d)
	require.Equal(t, value.Int(1), got)

	l := value.List([]value.Value{value.Int(10), value.Int(20)})
	ia := NewIdxAcc(1, NewTupleSetIdx(0))
	got2 := evalRow(t, ia, l)
	require.Equal(t, value.Int(20), got2)
}

func TestRowEvalRejectsUnresolvedVariable(t *testing.T) {
	_, err := RowEval(NewUnresolvedVariable("x"), TrivialContext{})
	require.Error(t, err)
}

func TestRowEvalRejectsTableCol(t *testing.T) {
	_, err := RowEval(NewTableCol(0, 0), TrivialContext{})
	require.Error(t, err)
}

func TestRowEvalRejectsApplyAgg(t *testing.T) {
	_, err := RowEval(NewApplyAgg(addOp, nil, []Expression{NewLiteral(value.Int(1))}), TrivialContext{})
	require.Error(t, err)
}

func TestRowEvalFullPipelineFromGenericApply(t *testing.T) {
	ctx := newMapContext().withVar("x", value.Int(1))
	raw := apply(addOp, NewUnresolvedVariable("x"), NewLiteral(value.Int(2)))
	partial, err := PartialEval(raw, ctx)
	require.NoError(t, err)
	l, ok := partial.(*Literal)
	require.True(t, ok)
	require.Equal(t, value.Int(3), l.Val)

	got, err := RowEval(OptimizeOps(partial), TrivialContext{})
	require.NoError(t, err)
	require.Equal(t, value.Int(3), got)
}
