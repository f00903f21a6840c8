package expression

import "strings"

// ListExpr is an ordered, heterogeneous composite of subexpressions.
type ListExpr struct {
	Items []Expression
}

// NewListExpr builds a list expression from its element expressions.
func NewListExpr(items []Expression) *ListExpr { return &ListExpr{Items: items} }

func (l *ListExpr) Children() []Expression { return l.Items }

func (l *ListExpr) WithChildren(children ...Expression) (Expression, error) {
	return &ListExpr{Items: children}, nil
}

func (l *ListExpr) String() string {
	parts := make([]string, len(l.Items))
	for i, e := range l.Items {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
