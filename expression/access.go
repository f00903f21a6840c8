package expression

import "fmt"

// FieldAcc is dictionary field access, e.g. `x.foo` or `foo(x)`.
type FieldAcc struct {
	Field string
	Arg   Expression
}

// NewFieldAcc builds a field access over arg.
func NewFieldAcc(field string, arg Expression) *FieldAcc { return &FieldAcc{Field: field, Arg: arg} }

func (f *FieldAcc) Children() []Expression { return []Expression{f.Arg} }

func (f *FieldAcc) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, childrenErr(1, children)
	}
	return &FieldAcc{Field: f.Field, Arg: children[0]}, nil
}

func (f *FieldAcc) String() string { return fmt.Sprintf("%s.%s", f.Arg, f.Field) }

// IdxAcc is list index access, e.g. `x[2]`.
type IdxAcc struct {
	Index int
	Arg   Expression
}

// NewIdxAcc builds an index access over arg.
func NewIdxAcc(index int, arg Expression) *IdxAcc { return &IdxAcc{Index: index, Arg: arg} }

func (x *IdxAcc) Children() []Expression { return []Expression{x.Arg} }

func (x *IdxAcc) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, childrenErr(1, children)
	}
	return &IdxAcc{Index: x.Index, Arg: children[0]}, nil
}

func (x *IdxAcc) String() string { return fmt.Sprintf("%s[%d]", x.Arg, x.Index) }
