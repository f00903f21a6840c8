package expression

import (
	"github.com/cozodb/cozo-eval/evalerr"
	"github.com/cozodb/cozo-eval/value"
)

// PartialEval rewrites e against ctx, folding constants and resolving
// names, per spec.md §4.3. It is pure and deterministic: calling it twice
// on its own output is a no-op (once every free variable is resolved).
func PartialEval(e Expression, ctx SymbolicContext) (Expression, error) {
	switch n := e.(type) {
	case *Literal, *TableCol, *TupleSetIdxExpr:
		return e, nil

	case *ListExpr:
		items := make([]Expression, len(n.Items))
		for i, item := range n.Items {
			v, err := PartialEval(item, ctx)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return &ListExpr{Items: items}, nil

	case *DictExpr:
		entries := make(map[string]Expression, len(n.Entries))
		for k, item := range n.Entries {
			v, err := PartialEval(item, ctx)
			if err != nil {
				return nil, err
			}
			entries[k] = v
		}
		return &DictExpr{Entries: entries}, nil

	case *UnresolvedVariable:
		resolved, ok := ctx.Resolve(n.Name)
		if !ok {
			return nil, evalerr.ErrUnresolvedVariable.New(n.Name)
		}
		return resolved, nil

	case *FieldAcc:
		return partialEvalFieldAcc(n, ctx)

	case *IdxAcc:
		return partialEvalIdxAcc(n, ctx)

	case *Apply:
		return partialEvalApply(n, ctx)

	case *ApplyAgg:
		params := make([]Expression, len(n.Params))
		for i, p := range n.Params {
			v, err := PartialEval(p, ctx)
			if err != nil {
				return nil, err
			}
			params[i] = v
		}
		args := make([]Expression, len(n.Args))
		for i, a := range n.Args {
			v, err := PartialEval(a, ctx)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return &ApplyAgg{Op: n.Op, Params: params, Args: args}, nil

	case *If:
		cond, err := PartialEval(n.Cond, ctx)
		if err != nil {
			return nil, err
		}
		if lit, ok := cond.(*Literal); ok {
			if b, isBool := lit.Val.AsBool(); isBool && b {
				return PartialEval(n.Then, ctx)
			}
			return PartialEval(n.Else, ctx)
		}
		then, err := PartialEval(n.Then, ctx)
		if err != nil {
			return nil, err
		}
		els, err := PartialEval(n.Else, ctx)
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: then, Else: els}, nil

	case *Switch:
		return partialEvalSwitch(n, ctx)

	case *Add, *Sub, *Mul, *Div, *Pow, *Mod, *StrCat, *Eq, *Ne, *Gt, *Ge, *Lt, *Le,
		*Not, *Minus, *IsNull, *NotNull, *Coalesce, *Or, *And:
		return nil, evalerr.ErrOptimizedBeforePartialEval.New()

	default:
		return nil, evalerr.ErrOptimizedBeforePartialEval.New()
	}
}

func partialEvalFieldAcc(n *FieldAcc, ctx SymbolicContext) (Expression, error) {
	var resolvedArg Expression
	if uv, ok := n.Arg.(*UnresolvedVariable); ok {
		if tid, cid, ok := ctx.ResolveTableCol(uv.Name, n.Field); ok {
			return NewTableCol(tid, cid), nil
		}
		resolved, ok := ctx.Resolve(uv.Name)
		if !ok {
			return nil, evalerr.ErrUnresolvedVariable.New(uv.Name)
		}
		v, err := PartialEval(resolved, ctx)
		if err != nil {
			return nil, err
		}
		resolvedArg = v
	} else {
		v, err := PartialEval(n.Arg, ctx)
		if err != nil {
			return nil, err
		}
		resolvedArg = v
	}

	switch arg := resolvedArg.(type) {
	case *Literal:
		if arg.Val.IsNull() {
			return NewLiteral(value.Null()), nil
		}
		if d, ok := arg.Val.AsDict(); ok {
			v, present := d.Get(n.Field)
			if !present {
				return NewLiteral(value.Null()), nil
			}
			return NewLiteral(v), nil
		}
		return nil, evalerr.ErrFieldAccess.New(n.Field, arg.Val.Static().String())
	case *DictExpr:
		if v, ok := arg.Entries[n.Field]; ok {
			return v, nil
		}
		return NewLiteral(value.Null()), nil
	case *IdxAcc, *FieldAcc, *TableCol, *Apply, *ApplyAgg:
		return NewFieldAcc(n.Field, resolvedArg), nil
	default:
		return nil, evalerr.ErrFieldAccess.New(n.Field, describe(resolvedArg))
	}
}

func partialEvalIdxAcc(n *IdxAcc, ctx SymbolicContext) (Expression, error) {
	resolvedArg, err := PartialEval(n.Arg, ctx)
	if err != nil {
		return nil, err
	}

	switch arg := resolvedArg.(type) {
	case *Literal:
		if arg.Val.IsNull() {
			return NewLiteral(value.Null()), nil
		}
		if l, ok := arg.Val.AsList(); ok {
			if n.Index >= len(l) {
				return NewLiteral(value.Null()), nil
			}
			return NewLiteral(l[n.Index]), nil
		}
		return nil, evalerr.ErrIndexAccess.New(n.Index, arg.Val.Static().String())
	case *ListExpr:
		if n.Index >= len(arg.Items) {
			return NewLiteral(value.Null()), nil
		}
		return arg.Items[n.Index], nil
	case *IdxAcc, *FieldAcc, *TableCol, *Apply, *ApplyAgg:
		return NewIdxAcc(n.Index, resolvedArg), nil
	default:
		return nil, evalerr.ErrIndexAccess.New(n.Index, describe(resolvedArg))
	}
}

func partialEvalApply(n *Apply, ctx SymbolicContext) (Expression, error) {
	if n.Op.Arity != nil && *n.Op.Arity != len(n.Args) {
		return nil, evalerr.ErrArityMismatch.New(n.Op.Name, len(n.Args))
	}

	switch n.Op.Name {
	case "&&", "||", "~":
		return partialEvalAndOrCoalesce(ctx, n.Op.Name, n.Args)
	}

	hasUnevaluated := false
	evaled := make([]Expression, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := PartialEval(a, ctx)
		if err != nil {
			return nil, err
		}
		lit, isLit := v.(*Literal)
		switch {
		case !isLit:
			hasUnevaluated = true
			evaled = append(evaled, v)
		case n.Op.NonNullArgs && lit.Val.IsNull():
			return NewLiteral(value.Null()), nil
		default:
			evaled = append(evaled, v)
		}
	}
	if hasUnevaluated {
		return &Apply{Op: n.Op, Args: evaled}, nil
	}
	args := make([]value.Value, len(evaled))
	for i, v := range evaled {
		args[i] = v.(*Literal).Val
	}
	result, err := n.Op.Eval(args)
	if err != nil {
		return nil, err
	}
	return NewLiteral(result), nil
}

func partialEvalSwitch(n *Switch, ctx SymbolicContext) (Expression, error) {
	scrutinee, err := PartialEval(n.Scrutinee, ctx)
	if err != nil {
		return nil, err
	}
	scrutineeLit, scrutineeConst := scrutinee.(*Literal)

	arms := make([]SwitchArm, len(n.Arms))
	for i, arm := range n.Arms {
		match, err := PartialEval(arm.Match, ctx)
		if err != nil {
			return nil, err
		}
		if scrutineeConst {
			if matchLit, ok := match.(*Literal); ok && switchMatch(scrutineeLit.Val, matchLit.Val) {
				return PartialEval(arm.Branch, ctx)
			}
		}
		branch, err := PartialEval(arm.Branch, ctx)
		if err != nil {
			return nil, err
		}
		arms[i] = SwitchArm{Match: match, Branch: branch}
	}

	def, err := PartialEval(n.Default, ctx)
	if err != nil {
		return nil, err
	}
	if scrutineeConst {
		return def, nil
	}
	return &Switch{Scrutinee: scrutinee, Arms: arms, Default: def}, nil
}

// switchMatch follows == semantics but treats Null as matching Null, per
// spec.md §9's resolution of the Switch-matching open question.
func switchMatch(a, b value.Value) bool {
	if a.IsNull() && b.IsNull() {
		return true
	}
	if a.Equal(b) {
		return true
	}
	c, ok := a.Compare(b)
	return ok && c == 0
}

func describe(e Expression) string {
	return e.String()
}
