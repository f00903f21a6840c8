package expression

import "github.com/cozodb/cozo-eval/value"

// Literal wraps a constant Value. It is the only node PartialEval's
// closed-form folding can produce, and the only shape InterpretEval will
// accept as a final result.
type Literal struct {
	Val value.Value
}

// NewLiteral wraps v as a constant expression.
func NewLiteral(v value.Value) *Literal { return &Literal{Val: v} }

func (l *Literal) Children() []Expression { return nil }

func (l *Literal) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, childrenErr(0, children)
	}
	return l, nil
}

func (l *Literal) String() string { return l.Val.String() }
