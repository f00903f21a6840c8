package expression

import "github.com/cozodb/cozo-eval/value"

// mapContext resolves variable names to literal values, and table/col
// lookups to a fixed pair, for tests that exercise PartialEval's
// resolution rules without a real catalog/planner collaborator.
type mapContext struct {
	vars      map[string]Expression
	tableCols map[string][2]int
}

func newMapContext() *mapContext {
	return &mapContext{vars: map[string]Expression{}, tableCols: map[string][2]int{}}
}

func (c *mapContext) withVar(name string, v value.Value) *mapContext {
	c.vars[name] = NewLiteral(v)
	return c
}

func (c *mapContext) Resolve(name string) (Expression, bool) {
	e, ok := c.vars[name]
	return e, ok
}

func (c *mapContext) ResolveTableCol(binding, field string) (int, int, bool) {
	tc, ok := c.tableCols[binding+"."+field]
	return tc[0], tc[1], ok
}

// rowContext resolves TupleSetIdx positions to a fixed slice of values.
type rowContext struct {
	row []value.Value
}

func (c rowContext) ResolveIdx(idx TupleSetIdx) (value.Value, error) {
	return c.row[idx], nil
}
