package expression

// OptimizeOps rewrites every generic Apply node whose operator name it
// recognizes into the matching specialized node, recursing through the
// whole tree. It is infallible: an Apply naming an operator outside the
// specialized set (a user-registered operator) is left as-is, since
// RowEval's generic Apply path already handles it.
//
// When this pass runs after PartialEval, every closed-form subtree has
// already been folded into a Literal, so the Apply nodes OptimizeOps sees
// are exactly the residual ones a row evaluation pass still has work to do
// on. It does not depend on PartialEval having run: cmd/cozoeval's row
// command applies it directly to a decoded tree.
func OptimizeOps(e Expression) Expression {
	switch n := e.(type) {
	case *Literal, *TableCol, *TupleSetIdxExpr, *UnresolvedVariable:
		return e

	case *ListExpr:
		items := make([]Expression, len(n.Items))
		for i, item := range n.Items {
			items[i] = OptimizeOps(item)
		}
		return &ListExpr{Items: items}

	case *DictExpr:
		entries := make(map[string]Expression, len(n.Entries))
		for k, item := range n.Entries {
			entries[k] = OptimizeOps(item)
		}
		return &DictExpr{Entries: entries}

	case *FieldAcc:
		return &FieldAcc{Field: n.Field, Arg: OptimizeOps(n.Arg)}

	case *IdxAcc:
		return &IdxAcc{Index: n.Index, Arg: OptimizeOps(n.Arg)}

	case *If:
		return &If{Cond: OptimizeOps(n.Cond), Then: OptimizeOps(n.Then), Else: OptimizeOps(n.Else)}

	case *Switch:
		arms := make([]SwitchArm, len(n.Arms))
		for i, a := range n.Arms {
			arms[i] = SwitchArm{Match: OptimizeOps(a.Match), Branch: OptimizeOps(a.Branch)}
		}
		return &Switch{Scrutinee: OptimizeOps(n.Scrutinee), Arms: arms, Default: OptimizeOps(n.Default)}

	case *ApplyAgg:
		params := make([]Expression, len(n.Params))
		for i, p := range n.Params {
			params[i] = OptimizeOps(p)
		}
		args := make([]Expression, len(n.Args))
		for i, a := range n.Args {
			args[i] = OptimizeOps(a)
		}
		return &ApplyAgg{Op: n.Op, Params: params, Args: args}

	case *Apply:
		return optimizeApply(n)

	default:
		// Already a specialized node (re-running OptimizeOps is a no-op) or
		// a node family with no children worth descending into.
		children := e.Children()
		if len(children) == 0 {
			return e
		}
		newChildren := make([]Expression, len(children))
		for i, c := range children {
			newChildren[i] = OptimizeOps(c)
		}
		rebuilt, err := e.WithChildren(newChildren...)
		if err != nil {
			return e
		}
		return rebuilt
	}
}

var binaryCtors = map[string]func(l, r Expression) Expression{
	"+":  func(l, r Expression) Expression { return NewAdd(l, r) },
	"-":  func(l, r Expression) Expression { return NewSub(l, r) },
	"*":  func(l, r Expression) Expression { return NewMul(l, r) },
	"/":  func(l, r Expression) Expression { return NewDiv(l, r) },
	"^":  func(l, r Expression) Expression { return NewPow(l, r) },
	"%":  func(l, r Expression) Expression { return NewMod(l, r) },
	"++": func(l, r Expression) Expression { return NewStrCat(l, r) },
	"==": func(l, r Expression) Expression { return NewEq(l, r) },
	"!=": func(l, r Expression) Expression { return NewNe(l, r) },
	">":  func(l, r Expression) Expression { return NewGt(l, r) },
	">=": func(l, r Expression) Expression { return NewGe(l, r) },
	"<":  func(l, r Expression) Expression { return NewLt(l, r) },
	"<=": func(l, r Expression) Expression { return NewLe(l, r) },
}

var unaryCtors = map[string]func(a Expression) Expression{
	"!":        func(a Expression) Expression { return NewNot(a) },
	"neg":      func(a Expression) Expression { return NewMinus(a) },
	"is_null":  func(a Expression) Expression { return NewIsNull(a) },
	"not_null": func(a Expression) Expression { return NewNotNull(a) },
}

var shortCircuitCtors = map[string]func(l, r Expression) Expression{
	"&&": func(l, r Expression) Expression { return NewAnd(l, r) },
	"||": func(l, r Expression) Expression { return NewOr(l, r) },
	"~":  func(l, r Expression) Expression { return NewCoalesce(l, r) },
}

func optimizeApply(n *Apply) Expression {
	if ctor, ok := shortCircuitCtors[n.Op.Name]; ok && len(n.Args) >= 2 {
		acc := OptimizeOps(n.Args[0])
		for _, raw := range n.Args[1:] {
			acc = ctor(acc, OptimizeOps(raw))
		}
		return acc
	}
	if ctor, ok := binaryCtors[n.Op.Name]; ok && len(n.Args) == 2 {
		return ctor(OptimizeOps(n.Args[0]), OptimizeOps(n.Args[1]))
	}
	if ctor, ok := unaryCtors[n.Op.Name]; ok && len(n.Args) == 1 {
		return ctor(OptimizeOps(n.Args[0]))
	}
	args := make([]Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = OptimizeOps(a)
	}
	return &Apply{Op: n.Op, Args: args}
}
