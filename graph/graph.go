// Package graph is the public interface to the multi-input automatic
// differentiation engine.
//
// A computation is an ordered node list over a flat index space: positions
// 0..len(inputs)-1 are the raw inputs, and every non-placeholder node
// appends one value in evaluation order. Shared subexpressions are
// expressed by referencing the same position from several nodes; the
// backward sweep sums their contributions.
//
// Example:
//
//	import "github.com/backprop-ml/backprop/graph"
//
//	// f(x, y) = sin(x) * (x + y)
//	b := graph.NewBuilder(2)
//	b.Add(0, 1) // x + y at position 2
//	b.Sin(0)    // sin(x) at position 3
//	b.Mul(2, 3)
//
//	value, grad, err := graph.EvaluateWithGradient(b.Build(), []float64{0.6, 1.4})
//	if err != nil {
//	    // ArityError, IndexError or ErrEmptyGraph
//	}
//	g := grad(1.0) // [df/dx, df/dy]
package graph

import "github.com/backprop-ml/backprop/internal/graph"

// Op identifies one operation in the catalog.
type Op = graph.Op

// The operation catalog. Inp is a placeholder referencing a raw input
// position; the binary ops take two predecessor indices, the rest one.
const (
	Inp  = graph.Inp
	Add  = graph.Add
	Sub  = graph.Sub
	Mul  = graph.Mul
	Div  = graph.Div
	Pow  = graph.Pow
	Sin  = graph.Sin
	Cos  = graph.Cos
	Tan  = graph.Tan
	Exp  = graph.Exp
	Ln   = graph.Ln
	Sqrt = graph.Sqrt
	Abs  = graph.Abs
)

// Node is one operation plus the tape positions of its arguments.
type Node = graph.Node

// Builder constructs node lists without hand-tracking tape positions.
type Builder = graph.Builder

// NewBuilder returns a builder for a graph over numInputs inputs.
func NewBuilder(numInputs int) *Builder {
	return graph.NewBuilder(numInputs)
}

// GradientFunc is the exclusively-owned gradient callable: seed cotangent
// in, per-input gradients out.
type GradientFunc = graph.GradientFunc

// SharedGradient is the clonable gradient callable, safe for concurrent
// invocation from multiple owners.
type SharedGradient = graph.SharedGradient

// ArityError reports a node with the wrong number of predecessor indices.
type ArityError = graph.ArityError

// IndexError reports a predecessor index addressing a nonexistent tape
// position.
type IndexError = graph.IndexError

// ErrEmptyGraph reports a computation with no operations and no inputs.
var ErrEmptyGraph = graph.ErrEmptyGraph

// Evaluate runs the forward pass only and returns the final value.
func Evaluate(nodes []Node, inputs []float64) (float64, error) {
	return graph.Evaluate(nodes, inputs)
}

// EvaluateWithGradient returns the final value plus an exclusively-owned
// gradient function over the same forward pass.
func EvaluateWithGradient(nodes []Node, inputs []float64) (float64, GradientFunc, error) {
	return graph.EvaluateWithGradient(nodes, inputs)
}

// EvaluateWithSharedGradient returns the final value plus the shared,
// clonable form of the gradient callable.
func EvaluateWithSharedGradient(nodes []Node, inputs []float64) (float64, *SharedGradient, error) {
	return graph.EvaluateWithSharedGradient(nodes, inputs)
}
