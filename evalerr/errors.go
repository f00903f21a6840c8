// Package evalerr holds the evaluator's error kinds, in a leaf package so
// both expression and function can report them without an import cycle.
package evalerr

import errorskind "gopkg.in/src-d/go-errors.v1"

// Error kinds for the evaluator, following the teacher's own sentinel-error
// idiom (see dolthub-go-mysql-server/auth/auth.go's ErrNotAuthorized =
// errors.NewKind(...)). Each Kind is instantiated with .New(...) at the
// call site; callers that need to recognize a specific failure use
// Kind.Is(err).
var (
	// ErrUnresolvedVariable is returned when the symbolic context had no
	// binding for a Variable.
	ErrUnresolvedVariable = errorskind.NewKind("unresolved variable `%s`")

	// ErrUnresolveTableCol is returned when a TableCol reference reaches
	// row evaluation; it must have been rewritten to a TupleSetIdx first.
	ErrUnresolveTableCol = errorskind.NewKind("unresolved table column (table %d, col %d)")

	// ErrUnresolveTupleIdx is returned when the row context has no slot
	// for a TupleSetIdx.
	ErrUnresolveTupleIdx = errorskind.NewKind("unresolved tuple index %d")

	// ErrFieldAccess is returned when a field access is attempted on a
	// non-dict, non-null value.
	ErrFieldAccess = errorskind.NewKind("cannot access field %q of %s")

	// ErrIndexAccess is returned when an index access is attempted on a
	// non-list, non-null value.
	ErrIndexAccess = errorskind.NewKind("cannot access index %d of %s")

	// ErrOpTypeMismatch is returned when an operator is called with
	// incompatible operand types.
	ErrOpTypeMismatch = errorskind.NewKind("cannot apply `%s` to %s")

	// ErrArityMismatch is returned when a fixed-arity operator is applied
	// to the wrong number of arguments.
	ErrArityMismatch = errorskind.NewKind("arity mismatch for `%s`: %d arguments given")

	// ErrOptimizedBeforePartialEval is returned when a specialized node
	// (produced only by the optimizer) reaches partial evaluation; partial
	// evaluation must always run before optimization.
	ErrOptimizedBeforePartialEval = errorskind.NewKind("optimized node reached partial evaluation")

	// ErrIncompleteEvaluation is returned when InterpretEval cannot fully
	// reduce an expression to a constant.
	ErrIncompleteEvaluation = errorskind.NewKind("incomplete evaluation: %s")

	// ErrParse passes a parser failure through when the evaluator is
	// handed input that has not been parsed.
	ErrParse = errorskind.NewKind("parse error: %s")
)
