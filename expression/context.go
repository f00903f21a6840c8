package expression

import (
	"github.com/cozodb/cozo-eval/evalerr"
	"github.com/cozodb/cozo-eval/value"
)

// SymbolicContext is consumed by PartialEval: it resolves a free variable
// name to a residual expression (typically a TupleSetIdx or a Literal),
// and resolves a binding.field pair to a persistent column.
type SymbolicContext interface {
	// Resolve looks up a variable name, returning the expression it
	// stands for and whether it was found.
	Resolve(name string) (Expression, bool)
	// ResolveTableCol looks up binding.field as a persistent column
	// reference.
	ResolveTableCol(binding, field string) (tableID, colID int, ok bool)
}

// RowContext is consumed by RowEval: it resolves a TupleSetIdx to the
// value occupying that slot in the current row. Named ResolveIdx rather
// than spec.md's bare "resolve" only because a single Go type
// (TrivialContext below) needs to implement this alongside
// SymbolicContext.Resolve, and Go has no method overloading.
type RowContext interface {
	ResolveIdx(idx TupleSetIdx) (value.Value, error)
}

// TrivialContext rejects every lookup. It implements both SymbolicContext
// and RowContext, for tests and for evaluating expressions that are
// already fully closed (contain no Variable, TableCol or TupleSetIdx).
type TrivialContext struct{}

func (TrivialContext) Resolve(name string) (Expression, bool) { return nil, false }

func (TrivialContext) ResolveTableCol(binding, field string) (int, int, bool) {
	return 0, 0, false
}

func (TrivialContext) ResolveIdx(idx TupleSetIdx) (value.Value, error) {
	return value.Null(), evalerr.ErrUnresolveTupleIdx.New(int(idx))
}
