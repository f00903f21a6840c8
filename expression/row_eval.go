package expression

import (
	"github.com/cozodb/cozo-eval/evalerr"
	"github.com/cozodb/cozo-eval/value"
)

// RowEval realizes e against the concrete row ctx exposes, per spec.md
// §4.6. e must already be fully resolved: UnresolvedVariable, TableCol and
// ApplyAgg reach here only on a caller error, not as normal operation, so
// they fail rather than degrading silently. A generic Apply (e.g. a
// user-registered operator OptimizeOps leaves as-is) is evaluated through
// its Operator's Eval.
func RowEval(e Expression, ctx RowContext) (value.Value, error) {
	switch n := e.(type) {
	case *Literal:
		return n.Val, nil

	case *TupleSetIdxExpr:
		return ctx.ResolveIdx(n.Idx)

	case *UnresolvedVariable:
		return value.Null(), evalerr.ErrUnresolvedVariable.New(n.Name)

	case *TableCol:
		return value.Null(), evalerr.ErrUnresolveTableCol.New(n.Table, n.Col)

	case *ListExpr:
		items := make([]value.Value, len(n.Items))
		for i, item := range n.Items {
			v, err := RowEval(item, ctx)
			if err != nil {
				return value.Null(), err
			}
			items[i] = v
		}
		return value.List(items), nil

	case *DictExpr:
		m := make(map[string]value.Value, len(n.Entries))
		for k, item := range n.Entries {
			v, err := RowEval(item, ctx)
			if err != nil {
				return value.Null(), err
			}
			m[k] = v
		}
		return value.DictVal(m), nil

	case *FieldAcc:
		return rowEvalFieldAcc(n, ctx)

	case *IdxAcc:
		return rowEvalIdxAcc(n, ctx)

	case *Apply:
		return rowEvalApply(n, ctx)

	case *ApplyAgg:
		return value.Null(), evalerr.ErrIncompleteEvaluation.New(n.String())

	case *If:
		cond, err := RowEval(n.Cond, ctx)
		if err != nil {
			return value.Null(), err
		}
		b, ok := cond.AsBool()
		if !ok && !cond.IsNull() {
			return value.Null(), evalerr.ErrOpTypeMismatch.New("if", []string{cond.String()})
		}
		if ok && b {
			return RowEval(n.Then, ctx)
		}
		return RowEval(n.Else, ctx)

	case *Switch:
		return rowEvalSwitch(n, ctx)

	case *Add:
		return rowEvalBinaryNonNull("+", n.Left, n.Right, ctx, addOp.EvalTwoNonNull)
	case *Sub:
		return rowEvalBinaryNonNull("-", n.Left, n.Right, ctx, subOp.EvalTwoNonNull)
	case *Mul:
		return rowEvalBinaryNonNull("*", n.Left, n.Right, ctx, mulOp.EvalTwoNonNull)
	case *Div:
		return rowEvalBinaryNonNull("/", n.Left, n.Right, ctx, divOp.EvalTwoNonNull)
	case *Pow:
		return rowEvalBinaryNonNull("^", n.Left, n.Right, ctx, powOp.EvalTwoNonNull)
	case *Mod:
		return rowEvalBinaryNonNull("%", n.Left, n.Right, ctx, modOp.EvalTwoNonNull)
	case *StrCat:
		return rowEvalBinaryNonNull("++", n.Left, n.Right, ctx, strCatOp.EvalTwoNonNull)
	case *Eq:
		return rowEvalBinaryNonNull("==", n.Left, n.Right, ctx, eqOp.EvalTwoNonNull)
	case *Ne:
		return rowEvalBinaryNonNull("!=", n.Left, n.Right, ctx, neOp.EvalTwoNonNull)
	case *Gt:
		return rowEvalBinaryNonNull(">", n.Left, n.Right, ctx, gtOp.EvalTwoNonNull)
	case *Ge:
		return rowEvalBinaryNonNull(">=", n.Left, n.Right, ctx, geOp.EvalTwoNonNull)
	case *Lt:
		return rowEvalBinaryNonNull("<", n.Left, n.Right, ctx, ltOp.EvalTwoNonNull)
	case *Le:
		return rowEvalBinaryNonNull("<=", n.Left, n.Right, ctx, leOp.EvalTwoNonNull)

	case *And:
		return rowEvalAnd(ctx, n.Left, n.Right)
	case *Or:
		return rowEvalOr(ctx, n.Left, n.Right)
	case *Coalesce:
		return rowEvalCoalesce(ctx, n.Left, n.Right)

	case *Not:
		return rowEvalUnaryNonNull("!", n.Arg, ctx, notOp.EvalOneNonNull)
	case *Minus:
		return rowEvalUnaryNonNull("-", n.Arg, ctx, minusOp.EvalOneNonNull)
	case *IsNull:
		return rowEvalUnaryTolerant(n.Arg, ctx, isNullOp.EvalOne)
	case *NotNull:
		return rowEvalUnaryTolerant(n.Arg, ctx, notNullOp.EvalOne)

	default:
		return value.Null(), evalerr.ErrIncompleteEvaluation.New(e.String())
	}
}

func rowEvalFieldAcc(n *FieldAcc, ctx RowContext) (value.Value, error) {
	arg, err := RowEval(n.Arg, ctx)
	if err != nil {
		return value.Null(), err
	}
	if arg.IsNull() {
		return value.Null(), nil
	}
	d, ok := arg.AsDict()
	if !ok {
		return value.Null(), evalerr.ErrFieldAccess.New(n.Field, arg.String())
	}
	v, present := d.Get(n.Field)
	if !present {
		return value.Null(), nil
	}
	return v, nil
}

func rowEvalIdxAcc(n *IdxAcc, ctx RowContext) (value.Value, error) {
	arg, err := RowEval(n.Arg, ctx)
	if err != nil {
		return value.Null(), err
	}
	if arg.IsNull() {
		return value.Null(), nil
	}
	l, ok := arg.AsList()
	if !ok {
		return value.Null(), evalerr.ErrIndexAccess.New(n.Index, arg.String())
	}
	if n.Index >= len(l) {
		return value.Null(), nil
	}
	return l[n.Index], nil
}

func rowEvalApply(n *Apply, ctx RowContext) (value.Value, error) {
	if n.Op.Arity != nil && *n.Op.Arity != len(n.Args) {
		return value.Null(), evalerr.ErrArityMismatch.New(n.Op.Name, len(n.Args))
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := RowEval(a, ctx)
		if err != nil {
			return value.Null(), err
		}
		if n.Op.NonNullArgs && v.IsNull() {
			return value.Null(), nil
		}
		args[i] = v
	}
	return n.Op.Eval(args)
}

func rowEvalSwitch(n *Switch, ctx RowContext) (value.Value, error) {
	scrutinee, err := RowEval(n.Scrutinee, ctx)
	if err != nil {
		return value.Null(), err
	}
	for _, arm := range n.Arms {
		match, err := RowEval(arm.Match, ctx)
		if err != nil {
			return value.Null(), err
		}
		if switchMatch(scrutinee, match) {
			return RowEval(arm.Branch, ctx)
		}
	}
	return RowEval(n.Default, ctx)
}

func rowEvalBinaryNonNull(
	op string,
	left, right Expression,
	ctx RowContext,
	fn func(a, b value.Value) (value.Value, error),
) (value.Value, error) {
	lv, err := RowEval(left, ctx)
	if err != nil {
		return value.Null(), err
	}
	if lv.IsNull() {
		return value.Null(), nil
	}
	rv, err := RowEval(right, ctx)
	if err != nil {
		return value.Null(), err
	}
	if rv.IsNull() {
		return value.Null(), nil
	}
	return fn(lv, rv)
}

func rowEvalUnaryNonNull(
	op string,
	arg Expression,
	ctx RowContext,
	fn func(a value.Value) (value.Value, error),
) (value.Value, error) {
	av, err := RowEval(arg, ctx)
	if err != nil {
		return value.Null(), err
	}
	if av.IsNull() {
		return value.Null(), nil
	}
	return fn(av)
}

func rowEvalUnaryTolerant(
	arg Expression,
	ctx RowContext,
	fn func(a value.Value) (value.Value, error),
) (value.Value, error) {
	av, err := RowEval(arg, ctx)
	if err != nil {
		return value.Null(), err
	}
	return fn(av)
}
