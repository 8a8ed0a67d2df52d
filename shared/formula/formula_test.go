package formula

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func eval(t *testing.T, src string, x float64) float64 {
	t.Helper()
	expr, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", src, err)
	}
	v, err := expr.Eval(x)
	if err != nil {
		t.Fatalf("Compile(%q).Eval(%v) error = %v", src, x, err)
	}
	return v
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestIdentityAndConstant(t *testing.T) {
	for _, x := range []float64{-38, -1, 0, 0.5, 17} {
		if got := eval(t, "x", x); got != x {
			t.Fatalf("x at %v = %v, want %v", x, got, x)
		}
		if got := eval(t, "5", x); got != 5 {
			t.Fatalf("5 at %v = %v, want 5", x, got)
		}
	}
}

func TestFlooredModulo(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{3, 0},
		{3.5, 0.5},
		{-1, 2},
	}
	for _, tt := range tests {
		if got := eval(t, "x%3", tt.x); !near(got, tt.want) {
			t.Fatalf("x%%3 at %v = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestEvaluation(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"5x", 2, 10},
		{"2sin(x)", math.Pi / 2, 2},
		{"3 cos (5x)", 0, 3},
		{"(x+1)(x-1)", 3, 8},
		{"2pi x", 1, 2 * math.Pi},
		{"xsinx", math.Pi / 2, math.Pi / 2},
		{"sin 2x", math.Pi / 4, 1},
		{"sin x cos x", 1, math.Sin(math.Cos(1))},
		{"-x^2", 3, -9},
		{"2^-x", 1, 0.5},
		{"2**3**2", 0, 512},
		{"2^3^2", 0, 512},
		{"x/2/2", 8, 2},
		{"10-3-2", 0, 5},
		{"ln e", 0, 1},
		{"log(1000)", 0, 3},
		{"2exp(x)", 0, 2},
		{"2ex", 1, 2 * math.E},
		{"sqrt(abs(x))", -16, 4},
		{"floor(x) + ceil(x)", 1.5, 3},
		{"sign(x)", -4, -1},
		{"1.5e2", 0, 150},
		{".5x", 4, 2},
		{"+x", 7, 7},
		{"--x", 7, 7},
		{"SIN(X)", 0, 0},
		{"sinh 0 + cosh 0 + tanh 0", 0, 1},
		{"cot(pi/4)", 0, 1},
		{"atan(1)*4", 0, math.Pi},
		{"asin 1", 0, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := eval(t, tt.src, tt.x); !near(got, tt.want) {
			t.Fatalf("%s at %v = %v, want %v", tt.src, tt.x, got, tt.want)
		}
	}
}

func TestTanScaledIsFinite(t *testing.T) {
	expr, err := Compile("(tan x) / 1000")
	if err != nil {
		t.Fatalf("Compile error = %v", err)
	}
	for x := -38.0; x <= 38; x += 0.25 {
		v, err := expr.Eval(x)
		if err != nil {
			t.Fatalf("Eval(%v) error = %v", x, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Eval(%v) = %v, want finite", x, v)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"1/x", "x%x", "0^(-x)", "cot(x)"} {
		expr, err := Compile(src)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", src, err)
		}
		x := 0.0
		if src == "0^(-x)" {
			x = 1
		}
		_, err = expr.Eval(x)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("%s at %v error = %v, want ErrDivisionByZero", src, x, err)
		}
		if KindOf(err) != KindDivisionByZero {
			t.Fatalf("KindOf(%v) = %v, want %v", err, KindOf(err), KindDivisionByZero)
		}
	}
}

func TestArgumentOutOfRange(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		name string
	}{
		{"sqrt(x)", -1, "sqrt"},
		{"ln(x)", 0, "ln"},
		{"log(x)", -3, "log"},
		{"asin(x)", 2, "asin"},
		{"acos(x)", -1.5, "acos"},
		{"exp(x)", 100, "exp"},
		{"x^0.5", -4, "^"},
		{"x*x", 1e7, "*"},
		{"1e300", 0, "literal"},
		{"x+2e12", 1, "literal"},
	}
	for _, tt := range tests {
		expr, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", tt.src, err)
		}
		_, err = expr.Eval(tt.x)
		if !errors.Is(err, ErrArgumentOutOfRange) {
			t.Fatalf("%s at %v error = %v, want ErrArgumentOutOfRange", tt.src, tt.x, err)
		}
		var rangeErr *ArgumentOutOfRangeError
		if !errors.As(err, &rangeErr) || rangeErr.Func != tt.name {
			t.Fatalf("%s at %v error = %#v, want Func %q", tt.src, tt.x, err, tt.name)
		}
		if KindOf(err) != KindArgumentOutOfRange {
			t.Fatalf("KindOf(%v) = %v, want %v", err, KindOf(err), KindArgumentOutOfRange)
		}
	}
}

func TestTranslationFailures(t *testing.T) {
	tests := []struct {
		src string
		pos int
	}{
		{"", 0},
		{"   ", 0},
		{"y", 0},
		{"x + q", 4},
		{"foo(x)", 0},
		{"(x", 0},
		{"x)", 1},
		{"sin(x", 3},
		{"1.2.3", 0},
		{"1e", 0},
		{"1e+", 0},
		{".", 0},
		{"x +", 3},
		{"*x", 0},
		{"x2", 1},
		{"(x)3", 3},
		{"sin", 3},
		{"x $ 2", 2},
	}
	for _, tt := range tests {
		_, err := Compile(tt.src)
		if !errors.Is(err, ErrTranslation) {
			t.Fatalf("Compile(%q) error = %v, want ErrTranslation", tt.src, err)
		}
		var terr *TranslationError
		if !errors.As(err, &terr) {
			t.Fatalf("Compile(%q) error type = %T, want *TranslationError", tt.src, err)
		}
		if terr.Pos != tt.pos {
			t.Fatalf("Compile(%q) pos = %d, want %d (%v)", tt.src, terr.Pos, tt.pos, err)
		}
	}
}

func TestLimits(t *testing.T) {
	if _, err := Compile(strings.Repeat("x+", MaxSourceLen) + "x"); !errors.Is(err, ErrTranslation) {
		t.Fatalf("long formula error = %v, want ErrTranslation", err)
	}
	deep := strings.Repeat("(", MaxDepth+1) + "x" + strings.Repeat(")", MaxDepth+1)
	if _, err := Compile(deep); !errors.Is(err, ErrTranslation) {
		t.Fatalf("deep formula error = %v, want ErrTranslation", err)
	}
	ok := strings.Repeat("(", 20) + "x" + strings.Repeat(")", 20)
	if got := eval(t, ok, 3); got != 3 {
		t.Fatalf("nested x = %v, want 3", got)
	}
}

// Every compiled formula either evaluates to a bounded finite number or
// reports one of the two evaluation errors.
func TestEvalIsFiniteOrFails(t *testing.T) {
	atoms := []string{"x", "2", "pi", "e", "0.5", "(x-1)", "sin x", "ln x", "sqrt x", "tan(x)", "1/x"}
	ops := []string{"+", "-", "*", "/", "%", "^"}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		src := atoms[rng.Intn(len(atoms))]
		for n := rng.Intn(4); n > 0; n-- {
			src += ops[rng.Intn(len(ops))] + atoms[rng.Intn(len(atoms))]
		}
		expr, err := Compile(src)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", src, err)
		}
		for x := -38.0; x <= 38; x += 1.7 {
			v, err := expr.Eval(x)
			if err != nil {
				if !errors.Is(err, ErrDivisionByZero) && !errors.Is(err, ErrArgumentOutOfRange) {
					t.Fatalf("%s at %v error = %v", src, x, err)
				}
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxMagnitude {
				t.Fatalf("%s at %v = %v, want bounded", src, x, v)
			}
		}
	}
}

func TestCompileDeterministic(t *testing.T) {
	for _, src := range []string{"x", "3 cos (5x)", "xsinx + 2^-x", "(x+1)(x-1)/4"} {
		a, err := Compile(src)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", src, err)
		}
		b, _ := Compile(src)
		if a.Len() != b.Len() {
			t.Fatalf("Compile(%q) lengths %d and %d differ", src, a.Len(), b.Len())
		}
		for x := -5.0; x <= 5; x += 0.5 {
			va, ea := a.Eval(x)
			vb, eb := b.Eval(x)
			if va != vb || (ea == nil) != (eb == nil) {
				t.Fatalf("%s at %v: %v/%v vs %v/%v", src, x, va, ea, vb, eb)
			}
		}
	}
}

func TestFormula(t *testing.T) {
	f, err := New("2x")
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if f.Source() != "2x" {
		t.Fatalf("Source() = %q, want %q", f.Source(), "2x")
	}
	if v, _ := f.Eval(4); v != 8 {
		t.Fatalf("Eval(4) = %v, want 8", v)
	}
	if _, err := New("2y"); !errors.Is(err, ErrTranslation) {
		t.Fatalf("New(2y) error = %v, want ErrTranslation", err)
	}
}
