// Package function implements the operator registry: named, arity-checked
// operators over fully realized value.Value arguments, plus the typed fast
// paths the optimizer's specialized nodes dispatch through.
package function

import "github.com/cozodb/cozo-eval/value"

// Operator describes a named primitive over Values.
type Operator struct {
	// Name is the canonical operator name used by Apply and by the
	// optimizer to recognize operators it specializes.
	Name string
	// Arity is the fixed argument count, or nil for variadic operators.
	Arity *int
	// NonNullArgs, when true, means any Null argument short-circuits the
	// result to Null without calling Eval.
	NonNullArgs bool
	// Eval computes the operator over a fully realized argument vector.
	Eval func(args []value.Value) (value.Value, error)

	// EvalTwoNonNull is the optimizer's binary fast path: both operands
	// are already known to be non-null. Set for the binary operators in
	// the specialized set and for operators built by LoadUserOperators.
	EvalTwoNonNull func(a, b value.Value) (value.Value, error)
	// EvalOneNonNull is the optimizer's unary fast path for Not and
	// Minus.
	EvalOneNonNull func(a value.Value) (value.Value, error)
	// EvalOne is the null-tolerant unary fast path for IsNull and
	// NotNull, which never fail and never return Null themselves.
	EvalOne func(a value.Value) (value.Value, error)
}

func arity(n int) *int { return &n }
