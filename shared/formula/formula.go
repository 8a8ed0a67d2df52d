// Package formula compiles single-variable formulas in x into a postfix
// program that can be evaluated safely, one sample at a time.
package formula

// Formula pairs the text a player typed with its compiled Expression.
type Formula struct {
	source string
	expr   *Expression
}

// New compiles source into a Formula.
func New(source string) (*Formula, error) {
	expr, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return &Formula{source: source, expr: expr}, nil
}

func (f *Formula) Source() string { return f.source }

func (f *Formula) Expression() *Expression { return f.expr }

// Eval evaluates the formula at x.
func (f *Formula) Eval(x float64) (float64, error) { return f.expr.Eval(x) }
