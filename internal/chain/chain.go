// Package chain implements reverse-mode automatic differentiation for
// single-input chains: a linear sequence of unary operations applied to
// one scalar. It is the degenerate form of the graph engine where every
// node's only predecessor is the immediately preceding value, so the
// backward sweep collapses to a reverse fold and nothing can fail.
package chain

import "math"

// Op identifies one unary operation in the chain catalog.
type Op int

// The chain catalog. Every operation takes the previous value and
// produces the next; arity is always 1.
const (
	Sin Op = iota
	Cos
	Exp
	Neg
)

var opNames = [...]string{
	Sin: "Sin",
	Cos: "Cos",
	Exp: "Exp",
	Neg: "Neg",
}

// String returns the catalog name of the operation.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "Unknown"
	}
	return opNames[op]
}

// forward computes the operation's value.
func (op Op) forward(x float64) float64 {
	switch op {
	case Sin:
		return math.Sin(x)
	case Cos:
		return math.Cos(x)
	case Exp:
		return math.Exp(x)
	case Neg:
		return -x
	}
	panic("chain: no forward rule for " + op.String())
}

// partial computes the local gradient rule: the cotangent of the
// operation's input, given its forward input x and output cotangent dy.
//
//	Sin: dy·cos(x)
//	Cos: -dy·sin(x)
//	Exp: dy·exp(x)
//	Neg: -dy
func (op Op) partial(x, dy float64) float64 {
	switch op {
	case Sin:
		return dy * math.Cos(x)
	case Cos:
		return -dy * math.Sin(x)
	case Exp:
		return dy * math.Exp(x)
	case Neg:
		return -dy
	}
	panic("chain: no gradient rule for " + op.String())
}

// program is the completed recording of one forward pass: each
// operation's tag paired with the input value it saw, in evaluation
// order, plus the final output. Immutable after construction.
type program struct {
	ops   []Op
	xs    []float64 // xs[i] is the input ops[i] saw
	final float64
}

// backward folds the local gradient rules in reverse: the seed cotangent
// of the final output flows back through each operation until it becomes
// the cotangent of the original input. Each invocation is independent.
func (p *program) backward(seed float64) float64 {
	grad := seed
	for i := len(p.ops) - 1; i >= 0; i-- {
		grad = p.ops[i].partial(p.xs[i], grad)
	}
	return grad
}

// GradientFunc is the exclusively-owned form of the chain gradient:
// a pure function from seed cotangent to input cotangent.
type GradientFunc func(seed float64) float64

// SharedGradient is the shared, clonable form. All clones address one
// immutable program and may be invoked concurrently.
type SharedGradient struct {
	prog *program
}

// Apply runs the backward fold with the given seed cotangent.
func (g *SharedGradient) Apply(seed float64) float64 {
	return g.prog.backward(seed)
}

// Clone returns a new handle onto the same gradient program.
func (g *SharedGradient) Clone() *SharedGradient {
	return &SharedGradient{prog: g.prog}
}

// Compute applies the operations to x in order and returns the final
// value. An empty chain is the identity.
func Compute(ops []Op, x float64) float64 {
	value := x
	for _, op := range ops {
		value = op.forward(value)
	}
	return value
}

// ComputeGrad applies the operations to x and returns the final value
// together with an exclusively-owned gradient function. For an empty
// chain the gradient is the identity: grad(s) == s.
func ComputeGrad(ops []Op, x float64) (float64, GradientFunc) {
	p := record(ops, x)
	return p.final, p.backward
}

// ComputeGradShared is ComputeGrad returning the shared, clonable form of
// the gradient callable.
func ComputeGradShared(ops []Op, x float64) (float64, *SharedGradient) {
	p := record(ops, x)
	return p.final, &SharedGradient{prog: p}
}

// record runs the forward pass, capturing each operation's input.
func record(ops []Op, x float64) *program {
	p := &program{
		ops: append([]Op(nil), ops...),
		xs:  make([]float64, len(ops)),
	}
	value := x
	for i, op := range ops {
		p.xs[i] = value
		value = op.forward(value)
	}
	p.final = value
	return p
}
