package expression

import "fmt"

// binaryNode is embedded by every specialized two-child node produced by
// OptimizeOps. Carrying the operator name alongside Left/Right lets a
// single String/Children implementation serve all of them (each type's
// WithChildren goes through the shared rebuildBinary helper), the way the teacher's sql/expression BinaryExpression base type backs
// And, Or, Equals and friends.
type binaryNode struct {
	opName string
	Left   Expression
	Right  Expression
}

func (b *binaryNode) Children() []Expression { return []Expression{b.Left, b.Right} }

func (b *binaryNode) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, b.opName, b.Right) }

// unaryNode is embedded by every specialized one-child node.
type unaryNode struct {
	opName string
	Arg    Expression
}

func (u *unaryNode) Children() []Expression { return []Expression{u.Arg} }

func (u *unaryNode) String() string { return fmt.Sprintf("%s(%s)", u.opName, u.Arg) }

// Add, Sub, Mul, Div, Pow, Mod, StrCat, Eq, Ne, Gt, Ge, Lt, Le, Or, And and
// Coalesce are the specialized binary nodes OptimizeOps produces from a
// generic Apply whose operator name it recognizes. RowEval dispatches on
// the concrete Go type instead of a name string once a tree reaches this
// shape.
type (
	Add      struct{ binaryNode }
	Sub      struct{ binaryNode }
	Mul      struct{ binaryNode }
	Div      struct{ binaryNode }
	Pow      struct{ binaryNode }
	Mod      struct{ binaryNode }
	StrCat   struct{ binaryNode }
	Eq       struct{ binaryNode }
	Ne       struct{ binaryNode }
	Gt       struct{ binaryNode }
	Ge       struct{ binaryNode }
	Lt       struct{ binaryNode }
	Le       struct{ binaryNode }
	Or       struct{ binaryNode }
	And      struct{ binaryNode }
	Coalesce struct{ binaryNode }
)

func NewAdd(l, r Expression) *Add { return &Add{binaryNode{"+", l, r}} }
func NewSub(l, r Expression) *Sub { return &Sub{binaryNode{"-", l, r}} }
func NewMul(l, r Expression) *Mul { return &Mul{binaryNode{"*", l, r}} }
func NewDiv(l, r Expression) *Div { return &Div{binaryNode{"/", l, r}} }
func NewPow(l, r Expression) *Pow { return &Pow{binaryNode{"^", l, r}} }
func NewMod(l, r Expression) *Mod { return &Mod{binaryNode{"%", l, r}} }
func NewStrCat(l, r Expression) *StrCat { return &StrCat{binaryNode{"++", l, r}} }
func NewEq(l, r Expression) *Eq         { return &Eq{binaryNode{"==", l, r}} }
func NewNe(l, r Expression) *Ne         { return &Ne{binaryNode{"!=", l, r}} }
func NewGt(l, r Expression) *Gt         { return &Gt{binaryNode{">", l, r}} }
func NewGe(l, r Expression) *Ge         { return &Ge{binaryNode{">=", l, r}} }
func NewLt(l, r Expression) *Lt         { return &Lt{binaryNode{"<", l, r}} }
func NewLe(l, r Expression) *Le         { return &Le{binaryNode{"<=", l, r}} }
func NewOr(l, r Expression) *Or         { return &Or{binaryNode{"||", l, r}} }
func NewAnd(l, r Expression) *And       { return &And{binaryNode{"&&", l, r}} }
func NewCoalesce(l, r Expression) *Coalesce { return &Coalesce{binaryNode{"~", l, r}} }

func (n *Add) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewAdd) }
func (n *Sub) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewSub) }
func (n *Mul) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewMul) }
func (n *Div) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewDiv) }
func (n *Pow) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewPow) }
func (n *Mod) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewMod) }
func (n *StrCat) WithChildren(c ...Expression) (Expression, error) {
	return rebuildBinary(n, c, NewStrCat)
}
func (n *Eq) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewEq) }
func (n *Ne) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewNe) }
func (n *Gt) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewGt) }
func (n *Ge) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewGe) }
func (n *Lt) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewLt) }
func (n *Le) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewLe) }
func (n *Or) WithChildren(c ...Expression) (Expression, error) { return rebuildBinary(n, c, NewOr) }
func (n *And) WithChildren(c ...Expression) (Expression, error) {
	return rebuildBinary(n, c, NewAnd)
}
func (n *Coalesce) WithChildren(c ...Expression) (Expression, error) {
	return rebuildBinary(n, c, NewCoalesce)
}

func rebuildBinary[T Expression](self Expression, children []Expression, build func(l, r Expression) T) (Expression, error) {
	if len(children) != 2 {
		return nil, childrenErr(2, children)
	}
	return build(children[0], children[1]), nil
}

// Not, Minus, IsNull and NotNull are the specialized unary nodes.
type (
	Not     struct{ unaryNode }
	Minus   struct{ unaryNode }
	IsNull  struct{ unaryNode }
	NotNull struct{ unaryNode }
)

func NewNot(arg Expression) *Not         { return &Not{unaryNode{"!", arg}} }
func NewMinus(arg Expression) *Minus     { return &Minus{unaryNode{"-", arg}} }
func NewIsNull(arg Expression) *IsNull   { return &IsNull{unaryNode{"is_null", arg}} }
func NewNotNull(arg Expression) *NotNull { return &NotNull{unaryNode{"not_null", arg}} }

func (n *Not) WithChildren(c ...Expression) (Expression, error) {
	return rebuildUnary(c, func(a Expression) Expression { return NewNot(a) })
}
func (n *Minus) WithChildren(c ...Expression) (Expression, error) {
	return rebuildUnary(c, func(a Expression) Expression { return NewMinus(a) })
}
func (n *IsNull) WithChildren(c ...Expression) (Expression, error) {
	return rebuildUnary(c, func(a Expression) Expression { return NewIsNull(a) })
}
func (n *NotNull) WithChildren(c ...Expression) (Expression, error) {
	return rebuildUnary(c, func(a Expression) Expression { return NewNotNull(a) })
}

func rebuildUnary(children []Expression, build func(a Expression) Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, childrenErr(1, children)
	}
	return build(children[0]), nil
}
