// Package chain is the public interface to the single-input automatic
// differentiation engine: a linear sequence of unary operations applied
// to one scalar.
//
// Example:
//
//	import "github.com/backprop-ml/backprop/chain"
//
//	// f(x) = exp(sin(sin(x)))
//	ops := []chain.Op{chain.Sin, chain.Sin, chain.Exp}
//	value, grad := chain.ComputeGrad(ops, 2.0)
//	dfdx := grad(1.0)
package chain

import "github.com/backprop-ml/backprop/internal/chain"

// Op identifies one unary operation in the chain catalog.
type Op = chain.Op

// The chain catalog.
const (
	Sin = chain.Sin
	Cos = chain.Cos
	Exp = chain.Exp
	Neg = chain.Neg
)

// GradientFunc is the exclusively-owned gradient callable.
type GradientFunc = chain.GradientFunc

// SharedGradient is the clonable gradient callable, safe for concurrent
// invocation.
type SharedGradient = chain.SharedGradient

// Compute applies the operations to x in order and returns the final
// value.
func Compute(ops []Op, x float64) float64 {
	return chain.Compute(ops, x)
}

// ComputeGrad returns the final value plus an exclusively-owned gradient
// function.
func ComputeGrad(ops []Op, x float64) (float64, GradientFunc) {
	return chain.ComputeGrad(ops, x)
}

// ComputeGradShared returns the final value plus the shared, clonable
// form of the gradient callable.
func ComputeGradShared(ops []Op, x float64) (float64, *SharedGradient) {
	return chain.ComputeGradShared(ops, x)
}
