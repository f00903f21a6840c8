package expression

import (
	"sort"
	"strings"
)

// DictExpr is a composite mapping text keys to subexpressions. Key order
// in the source map is irrelevant to the tree's semantics; String sorts
// keys only for deterministic rendering.
type DictExpr struct {
	Entries map[string]Expression
}

// NewDictExpr builds a dict expression from its entry expressions.
func NewDictExpr(entries map[string]Expression) *DictExpr {
	return &DictExpr{Entries: entries}
}

func (d *DictExpr) sortedKeys() []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *DictExpr) Children() []Expression {
	keys := d.sortedKeys()
	out := make([]Expression, len(keys))
	for i, k := range keys {
		out[i] = d.Entries[k]
	}
	return out
}

// WithChildren rebuilds the dict with the same keys (in sorted order) but
// new child expressions, matching the order Children() produced them in.
func (d *DictExpr) WithChildren(children ...Expression) (Expression, error) {
	keys := d.sortedKeys()
	if len(children) != len(keys) {
		return nil, childrenErr(len(keys), children)
	}
	entries := make(map[string]Expression, len(keys))
	for i, k := range keys {
		entries[k] = children[i]
	}
	return &DictExpr{Entries: entries}, nil
}

func (d *DictExpr) String() string {
	keys := d.sortedKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + d.Entries[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
