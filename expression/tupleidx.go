package expression

import "fmt"

// TupleSetIdxExpr holds a TupleSetIdx, the slot a RowContext resolves at
// row-evaluation time. It is the terminal node a SymbolicContext (or a
// planner collaborator) leaves behind once a variable has been bound to a
// position in the working row.
type TupleSetIdxExpr struct {
	Idx TupleSetIdx
}

// NewTupleSetIdx wraps idx as a row-slot reference.
func NewTupleSetIdx(idx TupleSetIdx) *TupleSetIdxExpr { return &TupleSetIdxExpr{Idx: idx} }

func (t *TupleSetIdxExpr) Children() []Expression { return nil }

func (t *TupleSetIdxExpr) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, childrenErr(0, children)
	}
	return t, nil
}

func (t *TupleSetIdxExpr) String() string { return fmt.Sprintf("tuple[%d]", t.Idx) }
