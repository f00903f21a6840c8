package expression

import (
	"github.com/cozodb/cozo-eval/evalerr"
	"github.com/cozodb/cozo-eval/value"
)

// checkBoolOrNull enforces that And/Or operands are Bool or Null, per
// spec.md §4.5's "non-boolean operands to And/Or fail OpTypeMismatch".
func checkBoolOrNull(op string, v value.Value) error {
	if v.IsNull() {
		return nil
	}
	if _, ok := v.AsBool(); ok {
		return nil
	}
	return evalerr.ErrOpTypeMismatch.New(op, []string{v.String()})
}

// --- row evaluation: both operands already resolved expressions, second
// one only evaluated when the first doesn't determine the result. ---

func rowEvalAnd(ctx RowContext, left, right Expression) (value.Value, error) {
	lv, err := RowEval(left, ctx)
	if err != nil {
		return value.Null(), err
	}
	if lv.IsNull() {
		rv, err := RowEval(right, ctx)
		if err != nil {
			return value.Null(), err
		}
		if err := checkBoolOrNull("&&", rv); err != nil {
			return value.Null(), err
		}
		if b, ok := rv.AsBool(); ok && !b {
			return value.Bool(false), nil
		}
		return value.Null(), nil
	}
	lb, ok := lv.AsBool()
	if !ok {
		return value.Null(), evalerr.ErrOpTypeMismatch.New("&&", []string{lv.String()})
	}
	if !lb {
		return value.Bool(false), nil
	}
	rv, err := RowEval(right, ctx)
	if err != nil {
		return value.Null(), err
	}
	if err := checkBoolOrNull("&&", rv); err != nil {
		return value.Null(), err
	}
	return rv, nil
}

func rowEvalOr(ctx RowContext, left, right Expression) (value.Value, error) {
	lv, err := RowEval(left, ctx)
	if err != nil {
		return value.Null(), err
	}
	if lv.IsNull() {
		rv, err := RowEval(right, ctx)
		if err != nil {
			return value.Null(), err
		}
		if err := checkBoolOrNull("||", rv); err != nil {
			return value.Null(), err
		}
		if b, ok := rv.AsBool(); ok && b {
			return value.Bool(true), nil
		}
		return value.Null(), nil
	}
	lb, ok := lv.AsBool()
	if !ok {
		return value.Null(), evalerr.ErrOpTypeMismatch.New("||", []string{lv.String()})
	}
	if lb {
		return value.Bool(true), nil
	}
	rv, err := RowEval(right, ctx)
	if err != nil {
		return value.Null(), err
	}
	if err := checkBoolOrNull("||", rv); err != nil {
		return value.Null(), err
	}
	return rv, nil
}

func rowEvalCoalesce(ctx RowContext, left, right Expression) (value.Value, error) {
	lv, err := RowEval(left, ctx)
	if err != nil {
		return value.Null(), err
	}
	if !lv.IsNull() {
		return lv, nil
	}
	return RowEval(right, ctx)
}

// --- partial evaluation: n-ary, folded left-associatively one operand at
// a time so that an operand whose value doesn't matter is never
// partially evaluated either, matching row evaluation's short-circuit. ---

func partialEvalAndOrCoalesce(ctx SymbolicContext, name string, args []Expression) (Expression, error) {
	acc, err := PartialEval(args[0], ctx)
	if err != nil {
		return nil, err
	}
	for _, raw := range args[1:] {
		acc, err = shortCircuitStep(ctx, name, acc, raw)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func shortCircuitStep(ctx SymbolicContext, name string, left Expression, rightRaw Expression) (Expression, error) {
	switch name {
	case "&&":
		return andStep(ctx, left, rightRaw)
	case "||":
		return orStep(ctx, left, rightRaw)
	default:
		return coalesceStep(ctx, left, rightRaw)
	}
}

func andStep(ctx SymbolicContext, left Expression, rightRaw Expression) (Expression, error) {
	lit, ok := left.(*Literal)
	if !ok {
		right, err := PartialEval(rightRaw, ctx)
		if err != nil {
			return nil, err
		}
		return NewAnd(left, right), nil
	}
	if lit.Val.IsNull() {
		right, err := PartialEval(rightRaw, ctx)
		if err != nil {
			return nil, err
		}
		rlit, ok := right.(*Literal)
		if !ok {
			return NewAnd(left, right), nil
		}
		if err := checkBoolOrNull("&&", rlit.Val); err != nil {
			return nil, err
		}
		if b, ok := rlit.Val.AsBool(); ok && !b {
			return NewLiteral(value.Bool(false)), nil
		}
		return NewLiteral(value.Null()), nil
	}
	b, ok := lit.Val.AsBool()
	if !ok {
		return nil, evalerr.ErrOpTypeMismatch.New("&&", []string{lit.Val.String()})
	}
	if !b {
		return left, nil
	}
	return PartialEval(rightRaw, ctx)
}

func orStep(ctx SymbolicContext, left Expression, rightRaw Expression) (Expression, error) {
	lit, ok := left.(*Literal)
	if !ok {
		right, err := PartialEval(rightRaw, ctx)
		if err != nil {
			return nil, err
		}
		return NewOr(left, right), nil
	}
	if lit.Val.IsNull() {
		right, err := PartialEval(rightRaw, ctx)
		if err != nil {
			return nil, err
		}
		rlit, ok := right.(*Literal)
		if !ok {
			return NewOr(left, right), nil
		}
		if err := checkBoolOrNull("||", rlit.Val); err != nil {
			return nil, err
		}
		if b, ok := rlit.Val.AsBool(); ok && b {
			return NewLiteral(value.Bool(true)), nil
		}
		return NewLiteral(value.Null()), nil
	}
	b, ok := lit.Val.AsBool()
	if !ok {
		return nil, evalerr.ErrOpTypeMismatch.New("||", []string{lit.Val.String()})
	}
	if b {
		return left, nil
	}
	return PartialEval(rightRaw, ctx)
}

func coalesceStep(ctx SymbolicContext, left Expression, rightRaw Expression) (Expression, error) {
	lit, ok := left.(*Literal)
	if !ok {
		right, err := PartialEval(rightRaw, ctx)
		if err != nil {
			return nil, err
		}
		return NewCoalesce(left, right), nil
	}
	if !lit.Val.IsNull() {
		return left, nil
	}
	return PartialEval(rightRaw, ctx)
}
