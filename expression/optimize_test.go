package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cozodb/cozo-eval/expression/function"
	"github.com/cozodb/cozo-eval/value"
)

func TestOptimizeOpsSpecializesArithmetic(t *testing.T) {
	e := apply(function.Add(), NewTupleSetIdx(0), NewTupleSetIdx(1))
	got := OptimizeOps(e)
	_, ok := got.(*Add)
	require.True(t, ok, "expected *Add, got %T", got)
}

func TestOptimizeOpsSpecializesUnary(t *testing.T) {
	got := OptimizeOps(apply(function.Not(), NewTupleSetIdx(0)))
	_, ok := got.(*Not)
	require.True(t, ok, "expected *Not, got %T", got)
}

func TestOptimizeOpsFoldsAndChainLeftAssociative(t *testing.T) {
	e := apply(function.And(), NewTupleSetIdx(0), NewTupleSetIdx(1), NewTupleSetIdx(2))
	got := OptimizeOps(e)
	outer, ok := got.(*And)
	require.True(t, ok)
	inner, ok := outer.Left.(*And)
	require.True(t, ok, "expected left-associative nesting, got %T", outer.Left)
	idx0, ok := inner.Left.(*TupleSetIdxExpr)
	require.True(t, ok)
	require.Equal(t, TupleSetIdx(0), idx0.Idx)
}

func TestOptimizeOpsLeavesUnknownOperatorNameAsApply(t *testing.T) {
	custom := function.Operator{Name: "custom", Arity: nil}
	e := apply(custom, NewTupleSetIdx(0))
	got := OptimizeOps(e)
	_, ok := got.(*Apply)
	require.True(t, ok)
}

func TestOptimizeOpsRecursesIntoIf(t *testing.T) {
	e := NewIf(apply(function.Not(), NewTupleSetIdx(0)), NewTupleSetIdx(1), NewTupleSetIdx(2))
	got := OptimizeOps(e)
	ifE, ok := got.(*If)
	require.True(t, ok)
	_, ok = ifE.Cond.(*Not)
	require.True(t, ok)
}

func TestOptimizeOpsIsIdempotent(t *testing.T) {
	e := apply(function.Add(), lit(value.Int(1)), lit(value.Int(2)))
	once := OptimizeOps(e)
	twice := OptimizeOps(once)
	require.Equal(t, once, twice)
}
