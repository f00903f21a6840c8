package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cozodb/cozo-eval/value"
)

type recordingVisitor struct {
	visited *[]Expression
	stopAt  func(Expression) bool
}

func (v recordingVisitor) Visit(e Expression) Visitor {
	*v.visited = append(*v.visited, e)
	if v.stopAt != nil && v.stopAt(e) {
		return nil
	}
	return v
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	lit1 := NewLiteral(value.Int(1))
	lit2 := NewLiteral(value.Int(2))
	v := NewUnresolvedVariable("foo")
	add := NewAdd(lit1, lit2)
	and := NewAnd(v, add)
	e := NewNot(and)

	var visited []Expression
	Walk(recordingVisitor{visited: &visited}, e)

	require.Equal(t, []Expression{e, and, v, add, lit1, lit2}, visited)
}

func TestWalkStopsDescendingWhenVisitorReturnsNil(t *testing.T) {
	lit1 := NewLiteral(value.Int(1))
	lit2 := NewLiteral(value.Int(2))
	v := NewUnresolvedVariable("foo")
	add := NewAdd(lit1, lit2)
	and := NewAnd(v, add)
	e := NewNot(and)

	var visited []Expression
	stopAt := func(node Expression) bool {
		_, ok := node.(*Add)
		return ok
	}
	Walk(recordingVisitor{visited: &visited, stopAt: stopAt}, e)

	require.Equal(t, []Expression{e, and, v, add}, visited)
}

func TestInspectMirrorsWalk(t *testing.T) {
	lit1 := NewLiteral(value.Int(1))
	lit2 := NewLiteral(value.Int(2))
	add := NewAdd(lit1, lit2)

	var visited []Expression
	Inspect(add, func(node Expression) bool {
		visited = append(visited, node)
		return true
	})

	require.Equal(t, []Expression{add, lit1, lit2}, visited)
}

func TestInspectStopsOnFalse(t *testing.T) {
	lit1 := NewLiteral(value.Int(1))
	lit2 := NewLiteral(value.Int(2))
	add := NewAdd(lit1, lit2)

	var visited []Expression
	Inspect(add, func(node Expression) bool {
		visited = append(visited, node)
		return false
	})

	require.Equal(t, []Expression{add}, visited)
}
