package expression

import "fmt"

// TableCol is a resolved reference to a persistent column, identified by
// (table, col) ids assigned by the catalog collaborator. It must be
// rewritten to a TupleSetIdx before row evaluation; reaching RowEval as a
// TableCol is ErrUnresolveTableCol.
type TableCol struct {
	Table int
	Col   int
}

// NewTableCol builds a resolved column reference.
func NewTableCol(table, col int) *TableCol { return &TableCol{Table: table, Col: col} }

func (c *TableCol) Children() []Expression { return nil }

func (c *TableCol) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, childrenErr(0, children)
	}
	return c, nil
}

func (c *TableCol) String() string { return fmt.Sprintf("col(%d, %d)", c.Table, c.Col) }
