package function

import "github.com/cozodb/cozo-eval/value"

// Not implements "!": boolean negation.
func Not() Operator {
	evalOne := func(a value.Value) (value.Value, error) {
		b, ok := a.AsBool()
		if !ok {
			return value.Null(), typeMismatch("!", a)
		}
		return value.Bool(!b), nil
	}
	return Operator{
		Name:           "!",
		Arity:          arity(1),
		NonNullArgs:    true,
		EvalOneNonNull: evalOne,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalOne(args[0])
		},
	}
}

// Minus implements unary numeric negation.
func Minus() Operator {
	evalOne := func(a value.Value) (value.Value, error) {
		if i, ok := a.AsInt(); ok {
			return value.Int(-i), nil
		}
		if f, ok := a.AsFloat(); ok {
			return value.Float(-f), nil
		}
		return value.Null(), typeMismatch("neg", a)
	}
	return Operator{
		Name:           "neg",
		Arity:          arity(1),
		NonNullArgs:    true,
		EvalOneNonNull: evalOne,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalOne(args[0])
		},
	}
}

// IsNull implements "x.is_null()": never fails, never returns Null itself.
func IsNull() Operator {
	evalOne := func(a value.Value) (value.Value, error) {
		return value.Bool(a.IsNull()), nil
	}
	return Operator{
		Name:        "is_null",
		Arity:       arity(1),
		NonNullArgs: false,
		EvalOne:     evalOne,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalOne(args[0])
		},
	}
}

// NotNull implements "x.not_null()": never fails, never returns Null
// itself.
func NotNull() Operator {
	evalOne := func(a value.Value) (value.Value, error) {
		return value.Bool(!a.IsNull()), nil
	}
	return Operator{
		Name:        "not_null",
		Arity:       arity(1),
		NonNullArgs: false,
		EvalOne:     evalOne,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalOne(args[0])
		},
	}
}
