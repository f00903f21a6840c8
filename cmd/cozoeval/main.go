// Command cozoeval loads a serialized expression tree and an optional
// binding set from a file and runs it through the evaluator, for manual
// exercise and debugging outside of a full query engine.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"

	"github.com/cozodb/cozo-eval/expression"
	"github.com/cozodb/cozo-eval/expression/function"
	"github.com/cozodb/cozo-eval/value"
)

var log = logrus.New()

// CLI defines cozoeval's command-line interface.
var CLI struct {
	Verbose bool    `help:"Log each evaluator pass as it runs."`
	Eval    EvalCmd `cmd:"" help:"Fully reduce a closed-form expression via InterpretEval."`
	Row     RowCmd  `cmd:"" help:"Optimize and evaluate an expression against a concrete row."`
}

// EvalCmd decodes an expression and an optional flat binding set, runs
// InterpretEval, and prints the resulting Value's JSON-compatible form.
type EvalCmd struct {
	Expr     string `required:"" help:"Path to a JSON-encoded expression tree." type:"existingfile"`
	Bindings string `help:"Path to a JSON object mapping variable names to values." type:"existingfile"`
}

func (c *EvalCmd) Run() error {
	reg := function.NewRegistry()

	exprData, err := os.ReadFile(c.Expr)
	if err != nil {
		return fmt.Errorf("reading expression file: %w", err)
	}
	e, err := expression.DecodeExpression(exprData, reg)
	if err != nil {
		return fmt.Errorf("decoding expression: %w", err)
	}

	bindings := map[string]value.Value{}
	if c.Bindings != "" {
		data, err := os.ReadFile(c.Bindings)
		if err != nil {
			return fmt.Errorf("reading bindings file: %w", err)
		}
		bindings, err = expression.DecodeBindings(data)
		if err != nil {
			return fmt.Errorf("decoding bindings: %w", err)
		}
	}

	if CLI.Verbose {
		log.WithField("bindings", len(bindings)).Info("running InterpretEval")
	}

	ctx := bindingContext(bindings)
	v, err := expression.InterpretEval(e, ctx)
	if err != nil {
		return fmt.Errorf("evaluating expression: %w", err)
	}
	return printValue(v)
}

// RowCmd decodes an already-resolved expression tree and a row, optimizes
// and evaluates it, and prints the resulting Value.
type RowCmd struct {
	Expr string `required:"" help:"Path to a JSON-encoded expression tree." type:"existingfile"`
	Row  string `required:"" help:"Path to a JSON array of values indexed by tuple slot." type:"existingfile"`
}

func (c *RowCmd) Run() error {
	reg := function.NewRegistry()

	exprData, err := os.ReadFile(c.Expr)
	if err != nil {
		return fmt.Errorf("reading expression file: %w", err)
	}
	e, err := expression.DecodeExpression(exprData, reg)
	if err != nil {
		return fmt.Errorf("decoding expression: %w", err)
	}

	rowData, err := os.ReadFile(c.Row)
	if err != nil {
		return fmt.Errorf("reading row file: %w", err)
	}
	row, err := expression.DecodeRow(rowData)
	if err != nil {
		return fmt.Errorf("decoding row: %w", err)
	}

	if CLI.Verbose {
		log.WithField("row_len", len(row)).Info("running OptimizeOps then RowEval")
	}

	optimized := expression.OptimizeOps(e)
	v, err := expression.RowEval(optimized, rowValueContext(row))
	if err != nil {
		return fmt.Errorf("evaluating row: %w", err)
	}
	return printValue(v)
}

// bindingContext adapts a flat name->Value map into a SymbolicContext that
// has no table/column catalog, matching the CLI's "already-flat symbol
// binding set" contract.
type bindingContext map[string]value.Value

func (c bindingContext) Resolve(name string) (expression.Expression, bool) {
	v, ok := c[name]
	if !ok {
		return nil, false
	}
	return expression.NewLiteral(v), true
}

func (c bindingContext) ResolveTableCol(binding, field string) (int, int, bool) {
	return 0, 0, false
}

type rowValueContext []value.Value

func (r rowValueContext) ResolveIdx(idx expression.TupleSetIdx) (value.Value, error) {
	if int(idx) < 0 || int(idx) >= len(r) {
		return value.Null(), fmt.Errorf("row has no slot %d", idx)
	}
	return r[idx], nil
}

func printValue(v value.Value) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cozoeval"),
		kong.Description("Exercise the cozo expression evaluator directly from the command line."),
	)
	if err := ctx.Run(); err != nil {
		log.WithError(err).Error("cozoeval failed")
		ctx.FatalIfErrorf(err)
	}
}
