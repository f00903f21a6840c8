// Package expression implements the expression tree, its two resolution
// contexts, and the three evaluator passes that operate over it: partial
// evaluation against a symbolic context, operator optimization, and row
// evaluation against a per-row index context.
package expression

import (
	"fmt"
)

// Expression is the generic-recursion contract every node in the tree
// implements, mirroring the teacher's sql.Expression shape: a node exposes
// its immediate children and a way to rebuild itself with new ones, so
// structural utilities (Walk, Inspect) do not need a case for every node
// kind.
type Expression interface {
	// Children returns the expression's immediate subexpressions, in
	// evaluation order.
	Children() []Expression
	// WithChildren returns a copy of the expression with its children
	// replaced; it errors if the wrong number of children is given.
	WithChildren(children ...Expression) (Expression, error)
	// String renders the expression for diagnostics and error messages.
	String() string
}

// TupleSetIdx is an opaque slot coordinate into a row tuple, resolved by a
// RowContext at row-evaluation time.
type TupleSetIdx int

func childrenErr(want int, got []Expression) error {
	return fmt.Errorf("expected %d children, got %d", want, len(got))
}
