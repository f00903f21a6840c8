package function

import "github.com/cozodb/cozo-eval/value"

// StrCat implements "++": concatenation, requiring both sides to be Text.
func StrCat() Operator {
	evalTwo := func(a, b value.Value) (value.Value, error) {
		as, aok := a.AsText()
		bs, bok := b.AsText()
		if !aok || !bok {
			return value.Null(), typeMismatch("++", a, b)
		}
		return value.Text(as + bs), nil
	}
	return Operator{
		Name:           "++",
		Arity:          arity(2),
		NonNullArgs:    true,
		EvalTwoNonNull: evalTwo,
		Eval: func(args []value.Value) (value.Value, error) {
			return evalTwo(args[0], args[1])
		},
	}
}
