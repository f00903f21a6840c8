package function

import (
	"math"

	"github.com/spf13/cast"

	"github.com/cozodb/cozo-eval/evalerr"
	"github.com/cozodb/cozo-eval/value"
)

// numericPair promotes a and b to a common numeric representation: if
// either side is a Float, both are treated as float64; if both are Int,
// the integer path is used. Returns ok=false for any non-numeric operand.
func numericPair(a, b value.Value) (af, bf float64, ai, bi int64, bothInt, ok bool) {
	ai, aIsInt := a.AsInt()
	bi, bIsInt := b.AsInt()
	if aIsInt && bIsInt {
		return 0, 0, ai, bi, true, true
	}
	aFloat, aIsFloat := a.AsFloat()
	bFloat, bIsFloat := b.AsFloat()
	if !aIsInt && !aIsFloat {
		return 0, 0, 0, 0, false, false
	}
	if !bIsInt && !bIsFloat {
		return 0, 0, 0, 0, false, false
	}
	if aIsInt {
		aFloat = cast.ToFloat64(ai)
	}
	if bIsInt {
		bFloat = cast.ToFloat64(bi)
	}
	return aFloat, bFloat, 0, 0, false, true
}

func typeMismatch(op string, args ...value.Value) error {
	vs := make([]string, len(args))
	for i, a := range args {
		vs[i] = a.String()
	}
	return evalerr.ErrOpTypeMismatch.New(op, vs)
}

func arithBinary(name string, intOp func(a, b int64) (value.Value, error), floatOp func(a, b float64) value.Value) Operator {
	n := name
	evalTwo := func(a, b value.Value) (value.Value, error) {
		af, bf, ai, bi, bothInt, ok := numericPair(a, b)
		if !ok {
			return value.Null(), typeMismatch(n, a, b)
		}
		if bothInt {
			return intOp(ai, bi)
		}
		return floatOp(af, bf), nil
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

// Add implements "+".
func Add() Operator {
	return arithBinary("+",
		func(a, b int64) (value.Value, error) { return value.Int(a + b), nil },
		func(a, b float64) value.Value { return value.Float(a + b) },
	)
}

// Sub implements "-" (binary subtraction; unary negation is Minus).
func Sub() Operator {
	return arithBinary("-",
		func(a, b int64) (value.Value, error) { return value.Int(a - b), nil },
		func(a, b float64) value.Value { return value.Float(a - b) },
	)
}

// Mul implements "*".
func Mul() Operator {
	return arithBinary("*",
		func(a, b int64) (value.Value, error) { return value.Int(a * b), nil },
		func(a, b float64) value.Value { return value.Float(a * b) },
	)
}

// Div implements "/": integer division when both operands are Int (failing
// on division by zero), float division otherwise (IEEE result, including
// +Inf/-Inf/NaN on division by zero).
func Div() Operator {
	return arithBinary("/",
		func(a, b int64) (value.Value, error) {
			if b == 0 {
				return value.Null(), typeMismatch("/", value.Int(a), value.Int(b))
			}
			return value.Int(a / b), nil
		},
		func(a, b float64) value.Value { return value.Float(a / b) },
	)
}

// Mod implements "%", with the same Int/Float split as Div.
func Mod() Operator {
	return arithBinary("%",
		func(a, b int64) (value.Value, error) {
			if b == 0 {
				return value.Null(), typeMismatch("%", value.Int(a), value.Int(b))
			}
			return value.Int(a % b), nil
		},
		func(a, b float64) value.Value { return value.Float(math.Mod(a, b)) },
	)
}

// Pow implements "^". The result is always a Float: exponentiation of two
// Ints is not guaranteed to stay in int64 range, and cozo's surface
// language treats ^ as a float operator regardless of operand kind.
func Pow() Operator {
	eval := func(a, b value.Value) (value.Value, error) {
		af, bf, ai, bi, bothInt, ok := numericPair(a, b)
		if !ok {
			return value.Null(), typeMismatch("^", a, b)
		}
		if bothInt {
			af, bf = cast.ToFloat64(ai), cast.ToFloat64(bi)
		}
		return value.Float(math.Pow(af, bf)), nil
	}
	return Operator{
		Name:           "^",
		Arity:          arity(2),
		NonNullArgs:    true,
		EvalTwoNonNull: eval,
		Eval: func(args []value.Value) (value.Value, error) {
			return eval(args[0], args[1])
		},
	}
}
