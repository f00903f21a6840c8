package expression

import (
	"github.com/cozodb/cozo-eval/evalerr"
	"github.com/cozodb/cozo-eval/value"
)

// InterpretEval runs PartialEval against ctx and demands the result be a
// closed-form constant: the convenience entry point for callers that have
// no row to evaluate against (a REPL, a CLI, a constant-folding check) and
// simply want the value of a self-contained expression.
func InterpretEval(e Expression, ctx SymbolicContext) (value.Value, error) {
	reduced, err := PartialEval(e, ctx)
	if err != nil {
		return value.Null(), err
	}
	lit, ok := reduced.(*Literal)
	if !ok {
		return value.Null(), evalerr.ErrIncompleteEvaluation.New(reduced.String())
	}
	return lit.Val, nil
}
