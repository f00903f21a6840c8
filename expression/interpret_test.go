package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cozodb/cozo-eval/expression/function"
	"github.com/cozodb/cozo-eval/value"
)

func TestInterpretEvalClosedForm(t *testing.T) {
	e := apply(function.Add(), lit(value.Int(1)), lit(value.Int(2)))
	got, err := InterpretEval(e, TrivialContext{})
	require.NoError(t, err)
	require.Equal(t, value.Int(3), got)
}

func TestInterpretEvalResolvesVariables(t *testing.T) {
	ctx := newMapContext().withVar("x", value.Int(10))
	e := apply(function.Mul(), NewUnresolvedVariable("x"), lit(value.Int(4)))
	got, err := InterpretEval(e, ctx)
	require.NoError(t, err)
	require.Equal(t, value.Int(40), got)
}

func TestInterpretEvalFailsOnResidualTableCol(t *testing.T) {
	e := NewFieldAcc("a", NewTableCol(0, 1))
	_, err := InterpretEval(e, TrivialContext{})
	require.Error(t, err)
}
