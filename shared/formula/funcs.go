package formula

import "math"

// function is an entry of the whitelist callable from formula text.
type function struct {
	name  string
	apply func(v float64) (float64, error)
}

// functions is indexed by instr.fn; order is irrelevant but fixed.
var functions = []function{
	{"sin", plain(math.Sin)},
	{"cos", plain(math.Cos)},
	{"tan", plain(math.Tan)},
	{"cot", cot},
	{"asin", bounded("asin", -1, 1, math.Asin)},
	{"acos", bounded("acos", -1, 1, math.Acos)},
	{"atan", plain(math.Atan)},
	{"sinh", plain(math.Sinh)},
	{"cosh", plain(math.Cosh)},
	{"tanh", plain(math.Tanh)},
	{"exp", plain(math.Exp)},
	{"ln", positive("ln", math.Log)},
	{"log", positive("log", math.Log10)},
	{"sqrt", sqrt},
	{"abs", plain(math.Abs)},
	{"floor", plain(math.Floor)},
	{"ceil", plain(math.Ceil)},
	{"sign", sign},
}

// constants usable by name.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// variable is the only free variable.
const variable = "x"

var functionIndex = func() map[string]int {
	idx := make(map[string]int, len(functions))
	for i, f := range functions {
		idx[f.name] = i
	}
	return idx
}()

func plain(fn func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) { return fn(v), nil }
}

func bounded(name string, lo, hi float64, fn func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) {
		if v < lo || v > hi {
			return 0, &ArgumentOutOfRangeError{Func: name, Arg: v}
		}
		return fn(v), nil
	}
}

func positive(name string, fn func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) {
		if v <= 0 {
			return 0, &ArgumentOutOfRangeError{Func: name, Arg: v}
		}
		return fn(v), nil
	}
}

func sqrt(v float64) (float64, error) {
	if v < 0 {
		return 0, &ArgumentOutOfRangeError{Func: "sqrt", Arg: v}
	}
	return math.Sqrt(v), nil
}

func cot(v float64) (float64, error) {
	t := math.Tan(v)
	if math.Abs(t) < DivisionEpsilon {
		return 0, ErrDivisionByZero
	}
	return 1 / t, nil
}

func sign(v float64) (float64, error) {
	switch {
	case v > 0:
		return 1, nil
	case v < 0:
		return -1, nil
	default:
		return 0, nil
	}
}
