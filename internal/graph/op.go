package graph

import "math"

// Op identifies one operation in the catalog. Ops are plain tags; the
// forward formula and the local-gradient rule live in explicit switches
// below rather than in per-node closures, so the backward sweep never
// chases heap-allocated function values.
type Op int

// The operation catalog.
//
// Inp is a placeholder: it references a raw input position and produces no
// new tape entry. All other ops consume one or two tape positions and
// append exactly one value.
const (
	Inp Op = iota
	Add
	Sub
	Mul
	Div
	Pow
	Sin
	Cos
	Tan
	Exp
	Ln
	Sqrt
	Abs
)

var opNames = [...]string{
	Inp:  "Inp",
	Add:  "Add",
	Sub:  "Sub",
	Mul:  "Mul",
	Div:  "Div",
	Pow:  "Pow",
	Sin:  "Sin",
	Cos:  "Cos",
	Tan:  "Tan",
	Exp:  "Exp",
	Ln:   "Ln",
	Sqrt: "Sqrt",
	Abs:  "Abs",
}

// String returns the catalog name of the operation.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "Unknown"
	}
	return opNames[op]
}

// Arity returns the number of predecessor arguments the operation requires.
func (op Op) Arity() int {
	switch op {
	case Add, Sub, Mul, Div, Pow:
		return 2
	default:
		return 1
	}
}

// forward computes the operation's value from its gathered arguments.
// Arity has already been validated by the evaluator; args has exactly
// op.Arity() elements.
//
// Numeric domain issues are not errors: Div by zero yields ±Inf (NaN for
// 0/0), Ln of a negative argument yields NaN (-Inf at zero), Sqrt of a
// negative argument yields NaN. All follow IEEE-754 via the math package.
func (op Op) forward(args []float64) float64 {
	switch op {
	case Inp:
		return args[0]
	case Add:
		return args[0] + args[1]
	case Sub:
		return args[0] - args[1]
	case Mul:
		return args[0] * args[1]
	case Div:
		return args[0] / args[1]
	case Pow:
		return math.Pow(args[0], args[1])
	case Sin:
		return math.Sin(args[0])
	case Cos:
		return math.Cos(args[0])
	case Tan:
		return math.Tan(args[0])
	case Exp:
		return math.Exp(args[0])
	case Ln:
		return math.Log(args[0])
	case Sqrt:
		return math.Sqrt(args[0])
	case Abs:
		return math.Abs(args[0])
	}
	panic("graph: no forward rule for " + op.String())
}

// partials computes the local gradient rule: given the output cotangent dz
// and the argument values captured during the forward pass, it returns one
// cotangent per argument in d. Only the first op.Arity() slots of d are
// meaningful.
//
// Rules, for arguments a, b:
//
//	Add:  (dz, dz)
//	Sub:  (dz, -dz)
//	Mul:  (dz·b, dz·a)
//	Div:  (dz/b, -dz·a/b²)
//	Pow:  (dz·b·a^(b-1), dz·a^b·ln(a))
//	Sin:  dz·cos(a)
//	Cos:  -dz·sin(a)
//	Tan:  dz/cos²(a)
//	Exp:  dz·exp(a)
//	Ln:   dz/a
//	Sqrt: dz/(2·sqrt(a))
//	Abs:  dz·sign(a), with sign(0) = +1
//
// Abs at exactly zero takes the +1 subgradient (the >= 0 branch), matching
// the forward convention that |0| sits on the rising side.
func (op Op) partials(args []float64, dz float64) (d [2]float64) {
	switch op {
	case Inp:
		d[0] = dz
	case Add:
		d[0], d[1] = dz, dz
	case Sub:
		d[0], d[1] = dz, -dz
	case Mul:
		d[0], d[1] = dz*args[1], dz*args[0]
	case Div:
		d[0] = dz / args[1]
		d[1] = -dz * args[0] / (args[1] * args[1])
	case Pow:
		d[0] = dz * args[1] * math.Pow(args[0], args[1]-1)
		d[1] = dz * math.Pow(args[0], args[1]) * math.Log(args[0])
	case Sin:
		d[0] = dz * math.Cos(args[0])
	case Cos:
		d[0] = -dz * math.Sin(args[0])
	case Tan:
		c := math.Cos(args[0])
		d[0] = dz / (c * c)
	case Exp:
		d[0] = dz * math.Exp(args[0])
	case Ln:
		d[0] = dz / args[0]
	case Sqrt:
		d[0] = dz / (2 * math.Sqrt(args[0]))
	case Abs:
		if args[0] >= 0 {
			d[0] = dz
		} else {
			d[0] = -dz
		}
	default:
		panic("graph: no gradient rule for " + op.String())
	}
	return d
}
