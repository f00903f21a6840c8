package expression

// UnresolvedVariable is an unresolved symbolic name, awaiting resolution
// against a SymbolicContext during PartialEval. Mirrors the teacher's
// UnresolvedColumn, which plays the same role for unresolved column names
// before the analyzer binds them.
type UnresolvedVariable struct {
	Name string
}

// NewUnresolvedVariable wraps name as an unresolved variable reference.
func NewUnresolvedVariable(name string) *UnresolvedVariable {
	return &UnresolvedVariable{Name: name}
}

func (v *UnresolvedVariable) Children() []Expression { return nil }

func (v *UnresolvedVariable) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, childrenErr(0, children)
	}
	return v, nil
}

func (v *UnresolvedVariable) String() string { return v.Name }
