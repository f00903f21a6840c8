package function

import "github.com/cozodb/cozo-eval/value"

func comparison(name string, pick func(cmp int) bool) Operator {
	evalTwo := func(a, b value.Value) (value.Value, error) {
		cmp, ok := a.Compare(b)
		if !ok {
			return value.Null(), typeMismatch(name, a, b)
		}
		return value.Bool(pick(cmp)), nil
	}
	return Operator{
		Name:           name,
		Arity:          arity(2),
		NonNullArgs:    true,
		EvalTwoNonNull: evalTwo,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalTwo(args[0], args[1])
		},
	}
}

// Eq implements "==". Like every comparison it is NonNullArgs, so a Null
// operand never reaches EvalTwoNonNull: `null == null` evaluates to Null,
// not true. Value equality between two Nulls (true) is a separate notion
// used internally by Switch arm matching and Dict structural comparison,
// not by this operator.
func Eq() Operator {
	evalTwo := func(a, b value.Value) (value.Value, error) {
		cmp, ok := a.Compare(b)
		if !ok {
			return value.Null(), typeMismatch("==", a, b)
		}
		return value.Bool(cmp == 0), nil
	}
	return Operator{
		Name:           "==",
		Arity:          arity(2),
		NonNullArgs:    true,
		EvalTwoNonNull: evalTwo,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalTwo(args[0], args[1])
		},
	}
}

// Ne implements "!=".
func Ne() Operator {
	evalTwo := func(a, b value.Value) (value.Value, error) {
		cmp, ok := a.Compare(b)
		if !ok {
			return value.Null(), typeMismatch("!=", a, b)
		}
		return value.Bool(cmp != 0), nil
	}
	return Operator{
		Name:           "!=",
		Arity:          arity(2),
		NonNullArgs:    true,
		EvalTwoNonNull: evalTwo,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalTwo(args[0], args[1])
		},
	}
}

// Gt implements ">".
func Gt() Operator { return comparison(">", func(c int) bool { return c > 0 }) }

// Ge implements ">=".
func Ge() Operator { return comparison(">=", func(c int) bool { return c >= 0 }) }

// Lt implements "<".
func Lt() Operator { return comparison("<", func(c int) bool { return c < 0 }) }

// Le implements "<=".
func Le() Operator { return comparison("<=", func(c int) bool { return c <= 0 }) }
