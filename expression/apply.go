package expression

import (
	"strings"

	"github.com/cozodb/cozo-eval/expression/function"
)

// Apply is a generic named operator application, the shape every operator
// call starts in before OptimizeOps rewrites recognized names into
// specialized nodes.
type Apply struct {
	Op   function.Operator
	Args []Expression
}

// NewApply builds a generic operator application.
func NewApply(op function.Operator, args []Expression) *Apply {
	return &Apply{Op: op, Args: args}
}

func (a *Apply) Children() []Expression { return a.Args }

func (a *Apply) WithChildren(children ...Expression) (Expression, error) {
	return &Apply{Op: a.Op, Args: children}, nil
}

func (a *Apply) String() string {
	parts := make([]string, len(a.Args))
	for i, e := range a.Args {
		parts[i] = e.String()
	}
	return a.Op.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ApplyAgg is an aggregate operator application with two argument groups:
// parameters (evaluated once, e.g. a precision argument) and inputs
// (evaluated per row and accumulated by a collaborator outside this
// package). Neither PartialEval nor RowEval calls Op.Eval on it: per
// spec.md §4.3 rule 7 and §4.6, aggregation is opaque to this evaluator.
type ApplyAgg struct {
	Op     function.Operator
	Params []Expression
	Args   []Expression
}

// NewApplyAgg builds an aggregate operator application.
func NewApplyAgg(op function.Operator, params, args []Expression) *ApplyAgg {
	return &ApplyAgg{Op: op, Params: params, Args: args}
}

func (a *ApplyAgg) Children() []Expression {
	out := make([]Expression, 0, len(a.Params)+len(a.Args))
	out = append(out, a.Params...)
	out = append(out, a.Args...)
	return out
}

func (a *ApplyAgg) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != len(a.Params)+len(a.Args) {
		return nil, childrenErr(len(a.Params)+len(a.Args), children)
	}
	params := make([]Expression, len(a.Params))
	copy(params, children[:len(a.Params)])
	args := make([]Expression, len(a.Args))
	copy(args, children[len(a.Params):])
	return &ApplyAgg{Op: a.Op, Params: params, Args: args}, nil
}

func (a *ApplyAgg) String() string {
	params := make([]string, len(a.Params))
	for i, e := range a.Params {
		params[i] = e.String()
	}
	args := make([]string, len(a.Args))
	for i, e := range a.Args {
		args[i] = e.String()
	}
	return a.Op.Name + "[" + strings.Join(params, ", ") + "](" + strings.Join(args, ", ") + ")"
}
