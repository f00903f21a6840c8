package expression

import "github.com/cozodb/cozo-eval/expression/function"

// These package-level Operators back RowEval's typed fast paths for the
// specialized node set. They are separate from the ones OptimizeOps reads
// out of a generic Apply's Op field: a specialized node carries no Operator
// at all, only Left/Right or Arg, so RowEval needs its own handle on the
// same primitives by Go type instead of by registry lookup.
var (
	addOp    = function.Add()
	subOp    = function.Sub()
	mulOp    = function.Mul()
	divOp    = function.Div()
	powOp    = function.Pow()
	modOp    = function.Mod()
	strCatOp = function.StrCat()
	eqOp     = function.Eq()
	neOp     = function.Ne()
	gtOp     = function.Gt()
	geOp     = function.Ge()
	ltOp     = function.Lt()
	leOp     = function.Le()
	notOp    = function.Not()
	minusOp  = function.Minus()
	isNullOp = function.IsNull()
	notNullOp = function.NotNull()
)
