package function

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/cozodb/cozo-eval/value"
)

// Registry holds the operator namespace consulted by Apply resolution and
// by the optimizer's specialized-node recognition.
type Registry struct {
	ops map[string]Operator
}

// NewRegistry builds a Registry pre-populated with every builtin operator
// from spec.md §4.1.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Operator)}
	for _, op := range []Operator{
		Add(), Sub(), Mul(), Div(), Pow(), Mod(), StrCat(),
		Eq(), Ne(), Gt(), Ge(), Lt(), Le(),
		Not(), Minus(), IsNull(), NotNull(),
		Coalesce(), Or(), And(),
	} {
		r.Register(op)
	}
	return r
}

// Lookup returns the operator registered under name, if any.
func (r *Registry) Lookup(name string) (Operator, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Register adds or replaces an operator in the registry.
func (r *Registry) Register(op Operator) {
	r.ops[op.Name] = op
}

// userOperatorSpec is the YAML shape for an embedder-defined operator: a
// named binary numeric kernel chosen from a small fixed set, since the
// embedder supplies data (YAML), not Go code.
type userOperatorSpec struct {
	Name        string `yaml:"name"`
	Kernel      string `yaml:"kernel"`
	NonNullArgs bool   `yaml:"non_null_args"`
}

var userKernels = map[string]func(a, b value.Value) (value.Value, error){
	"min": func(a, b value.Value) (value.Value, error) {
		c, ok := a.Compare(b)
		if !ok {
			return value.Null(), typeMismatch("min", a, b)
		}
		if c <= 0 {
			return a, nil
		}
		return b, nil
	},
	"max": func(a, b value.Value) (value.Value, error) {
		c, ok := a.Compare(b)
		if !ok {
			return value.Null(), typeMismatch("max", a, b)
		}
		if c >= 0 {
			return a, nil
		}
		return b, nil
	},
}

// LoadUserOperators reads a YAML document describing additional named
// binary operators and returns them for registration, so an embedder can
// add a couple of domain operators (built from the fixed kernel set above)
// without recompiling this package.
func LoadUserOperators(r io.Reader) ([]Operator, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading user operator spec")
	}
	var specs []userOperatorSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, errors.Wrap(err, "parsing user operator spec")
	}
	ops := make([]Operator, 0, len(specs))
	for _, s := range specs {
		kernel, ok := userKernels[s.Kernel]
		if !ok {
			return nil, errors.Errorf("unknown operator kernel %q for operator %q", s.Kernel, s.Name)
		}
		ops = append(ops, Operator{
			Name:           s.Name,
			Arity:          arity(2),
			NonNullArgs:    s.NonNullArgs,
			EvalTwoNonNull: kernel,
			Eval: func(args []value.Value) (value.Value, error) {
				return kernel(args[0], args[1])
			},
		})
	}
	return ops, nil
}
