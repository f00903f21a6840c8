package expression

import (
	"fmt"

	"github.com/segmentio/encoding/json"

	"github.com/cozodb/cozo-eval/expression/function"
	"github.com/cozodb/cozo-eval/value"
)

// wireNode is the on-disk JSON shape for an expression tree node, the
// format cmd/cozoeval reads: spec.md §6 hands the evaluator a "serialized
// expression tree" without mandating a wire format, so this package picks
// one rather than leaving every embedder to invent their own.
type wireNode struct {
	Kind string `json:"kind"`

	Value *json.RawMessage `json:"value,omitempty"`

	Name string `json:"name,omitempty"`

	Table int `json:"table,omitempty"`
	Col   int `json:"col,omitempty"`

	Idx int `json:"idx,omitempty"`

	Items []wireNode `json:"items,omitempty"`

	Entries map[string]wireNode `json:"entries,omitempty"`

	Field string     `json:"field,omitempty"`
	Index int        `json:"index,omitempty"`
	Arg   *wireNode  `json:"arg,omitempty"`

	Op   string     `json:"op,omitempty"`
	Args []wireNode `json:"args,omitempty"`

	Cond *wireNode `json:"cond,omitempty"`
	Then *wireNode `json:"then,omitempty"`
	Else *wireNode `json:"else,omitempty"`

	Scrutinee *wireNode      `json:"scrutinee,omitempty"`
	Arms      []wireArmNode  `json:"arms,omitempty"`
	Default   *wireNode      `json:"default,omitempty"`
}

type wireArmNode struct {
	Match  wireNode `json:"match"`
	Branch wireNode `json:"branch"`
}

// DecodeExpression parses the wire format produced/consumed by
// cmd/cozoeval into an Expression tree, resolving named operators against
// reg.
func DecodeExpression(data []byte, reg *function.Registry) (Expression, error) {
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return n.toExpression(reg)
}

func (n wireNode) toExpression(reg *function.Registry) (Expression, error) {
	switch n.Kind {
	case "lit":
		if n.Value == nil {
			return NewLiteral(value.Null()), nil
		}
		var v value.Value
		if err := json.Unmarshal(*n.Value, &v); err != nil {
			return nil, err
		}
		return NewLiteral(v), nil

	case "var":
		return NewUnresolvedVariable(n.Name), nil

	case "tablecol":
		return NewTableCol(n.Table, n.Col), nil

	case "tupleidx":
		return NewTupleSetIdx(TupleSetIdx(n.Idx)), nil

	case "list":
		items := make([]Expression, len(n.Items))
		for i, item := range n.Items {
			e, err := item.toExpression(reg)
			if err != nil {
				return nil, err
			}
			items[i] = e
		}
		return NewListExpr(items), nil

	case "dict":
		entries := make(map[string]Expression, len(n.Entries))
		for k, item := range n.Entries {
			e, err := item.toExpression(reg)
			if err != nil {
				return nil, err
			}
			entries[k] = e
		}
		return NewDictExpr(entries), nil

	case "field":
		arg, err := n.Arg.toExpression(reg)
		if err != nil {
			return nil, err
		}
		return NewFieldAcc(n.Field, arg), nil

	case "idx":
		arg, err := n.Arg.toExpression(reg)
		if err != nil {
			return nil, err
		}
		return NewIdxAcc(n.Index, arg), nil

	case "apply":
		op, ok := reg.Lookup(n.Op)
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", n.Op)
		}
		args := make([]Expression, len(n.Args))
		for i, a := range n.Args {
			e, err := a.toExpression(reg)
			if err != nil {
				return nil, err
			}
			args[i] = e
		}
		return NewApply(op, args), nil

	case "if":
		cond, err := n.Cond.toExpression(reg)
		if err != nil {
			return nil, err
		}
		then, err := n.Then.toExpression(reg)
		if err != nil {
			return nil, err
		}
		els, err := n.Else.toExpression(reg)
		if err != nil {
			return nil, err
		}
		return NewIf(cond, then, els), nil

	case "switch":
		scrutinee, err := n.Scrutinee.toExpression(reg)
		if err != nil {
			return nil, err
		}
		arms := make([]SwitchArm, len(n.Arms))
		for i, a := range n.Arms {
			match, err := a.Match.toExpression(reg)
			if err != nil {
				return nil, err
			}
			branch, err := a.Branch.toExpression(reg)
			if err != nil {
				return nil, err
			}
			arms[i] = SwitchArm{Match: match, Branch: branch}
		}
		def, err := n.Default.toExpression(reg)
		if err != nil {
			return nil, err
		}
		return NewSwitch(scrutinee, arms, def), nil

	default:
		return nil, fmt.Errorf("unknown expression wire kind %q", n.Kind)
	}
}

// DecodeBindings parses a flat JSON object of variable name to Value,
// the shape cmd/cozoeval's --bindings file takes.
func DecodeBindings(data []byte) (map[string]value.Value, error) {
	var m map[string]value.Value
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeRow parses a JSON array of Value, the shape cmd/cozoeval's --row
// file takes.
func DecodeRow(data []byte) ([]value.Value, error) {
	var row []value.Value
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	return row, nil
}
