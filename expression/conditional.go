package expression

import (
	"fmt"
	"strings"
)

// If is a ternary conditional: cond selects Then or Else.
type If struct {
	Cond Expression
	Then Expression
	Else Expression
}

// NewIf builds a conditional. A missing else branch should be passed as
// NewLiteral(value.Null()), matching spec.md §8's "missing else => default
// Null" scenario.
func NewIf(cond, then, els Expression) *If { return &If{Cond: cond, Then: then, Else: els} }

func (i *If) Children() []Expression { return []Expression{i.Cond, i.Then, i.Else} }

func (i *If) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 3 {
		return nil, childrenErr(3, children)
	}
	return &If{Cond: children[0], Then: children[1], Else: children[2]}, nil
}

func (i *If) String() string {
	return fmt.Sprintf("if %s {%s} else {%s}", i.Cond, i.Then, i.Else)
}

// SwitchArm pairs a match expression with the expression to evaluate when
// the scrutinee equals it.
type SwitchArm struct {
	Match  Expression
	Branch Expression
}

// Switch is an ordered match over a scrutinee, with an explicit default
// branch. This is the explicit-shape resolution of spec.md §9's open
// question about SwitchExpr layout (the alternative, admissible shape is a
// flat list of (match, branch) pairs where the first pair's match doubles
// as the scrutinee and the last pair's match is a wildcard; see
// DESIGN.md).
type Switch struct {
	Scrutinee Expression
	Arms      []SwitchArm
	Default   Expression
}

// NewSwitch builds a switch expression. def is the branch taken when no
// arm matches; because it is always present, arms may be empty.
func NewSwitch(scrutinee Expression, arms []SwitchArm, def Expression) *Switch {
	return &Switch{Scrutinee: scrutinee, Arms: arms, Default: def}
}

func (s *Switch) Children() []Expression {
	out := make([]Expression, 0, 1+2*len(s.Arms)+1)
	out = append(out, s.Scrutinee)
	for _, a := range s.Arms {
		out = append(out, a.Match, a.Branch)
	}
	out = append(out, s.Default)
	return out
}

func (s *Switch) WithChildren(children ...Expression) (Expression, error) {
	want := 1 + 2*len(s.Arms) + 1
	if len(children) != want {
		return nil, childrenErr(want, children)
	}
	arms := make([]SwitchArm, len(s.Arms))
	for i := range arms {
		arms[i] = SwitchArm{Match: children[1+2*i], Branch: children[2+2*i]}
	}
	return &Switch{Scrutinee: children[0], Arms: arms, Default: children[len(children)-1]}, nil
}

func (s *Switch) String() string {
	parts := make([]string, len(s.Arms))
	for i, a := range s.Arms {
		parts[i] = fmt.Sprintf("%s => %s", a.Match, a.Branch)
	}
	return fmt.Sprintf("switch %s {%s, .. => %s}", s.Scrutinee, strings.Join(parts, ", "), s.Default)
}
