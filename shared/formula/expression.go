package formula

import "math"

const (
	// MaxSourceLen bounds the accepted formula text in bytes.
	MaxSourceLen = 256

	// MaxDepth bounds both parser nesting and the evaluation stack.
	MaxDepth = 64

	// MaxMagnitude is the explicit bound on every intermediate and final
	// value. Anything larger, infinite or NaN fails with ErrArgumentOutOfRange.
	MaxMagnitude = 1e12

	// DivisionEpsilon is the divisor magnitude treated as zero.
	DivisionEpsilon = 1e-12
)

type opcode uint8

const (
	opConst opcode = iota
	opVar
	opNeg
	opAdd
	opSub
	opMul
	opDiv
	opMod
	opPow
	opCall
)

var opNames = [...]string{
	opNeg: "-",
	opAdd: "+",
	opSub: "-",
	opMul: "*",
	opDiv: "/",
	opMod: "%",
	opPow: "^",
}

type instr struct {
	op  opcode
	fn  uint8
	val float64
}

// Expression is a compiled formula: a postfix program over x.
// It is immutable and safe for concurrent Eval calls.
type Expression struct {
	code     []instr
	maxStack int
}

// Len returns the number of instructions in the program.
func (e *Expression) Len() int { return len(e.code) }

// Eval evaluates the expression at x.
func (e *Expression) Eval(x float64) (float64, error) {
	var stack [MaxDepth]float64
	sp := 0
	for _, in := range e.code {
		switch in.op {
		case opConst:
			if !inRange(in.val) {
				return 0, &ArgumentOutOfRangeError{Func: "literal", Arg: in.val}
			}
			stack[sp] = in.val
			sp++
			continue
		case opVar:
			if !inRange(x) {
				return 0, &ArgumentOutOfRangeError{Func: variable, Arg: x}
			}
			stack[sp] = x
			sp++
			continue
		case opNeg:
			stack[sp-1] = -stack[sp-1]
			continue
		case opCall:
			arg := stack[sp-1]
			v, err := functions[in.fn].apply(arg)
			if err != nil {
				return 0, err
			}
			if !inRange(v) {
				return 0, &ArgumentOutOfRangeError{Func: functions[in.fn].name, Arg: arg}
			}
			stack[sp-1] = v
			continue
		}

		sp--
		a, b := stack[sp-1], stack[sp]
		var v float64
		switch in.op {
		case opAdd:
			v = a + b
		case opSub:
			v = a - b
		case opMul:
			v = a * b
		case opDiv:
			if math.Abs(b) < DivisionEpsilon {
				return 0, ErrDivisionByZero
			}
			v = a / b
		case opMod:
			if math.Abs(b) < DivisionEpsilon {
				return 0, ErrDivisionByZero
			}
			v = floorMod(a, b)
		case opPow:
			if a == 0 && b < 0 {
				return 0, ErrDivisionByZero
			}
			v = math.Pow(a, b)
		}
		if !inRange(v) {
			return 0, &ArgumentOutOfRangeError{Func: opNames[in.op], Arg: b}
		}
		stack[sp-1] = v
	}
	return stack[0], nil
}

// floorMod returns a mod b with the sign of b, so -1 % 3 == 2.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func inRange(v float64) bool {
	return math.Abs(v) <= MaxMagnitude
}
