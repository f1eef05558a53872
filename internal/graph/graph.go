// Package graph implements reverse-mode automatic differentiation over
// explicitly constructed computation graphs with one or more scalar inputs.
//
// A graph is an ordered list of nodes. Each node names an operation from
// the catalog and the tape positions of its arguments. Positions
// 0..len(inputs)-1 address the raw inputs in caller order; every
// non-placeholder node appends exactly one value, so the node evaluated
// k-th (placeholders excluded) lives at position len(inputs)+k. Inp nodes
// are documentation-only references back into the input range and occupy
// no position of their own.
//
// Evaluation is a single forward sweep. When gradients are requested, the
// sweep additionally records, per node, the operation tag, its predecessor
// indices, and the argument values it saw. The backward sweep walks those
// records in reverse, accumulating cotangents additively so that a
// position feeding several consumers sums all incoming contributions.
package graph

// Node is one operation in a computation graph: an operation tag plus the
// tape positions of its predecessor arguments.
type Node struct {
	Op   Op
	Args []int
}

// Evaluate runs the forward pass only and returns the final tape value.
//
// An empty node list is the identity: the last input is returned
// unchanged. With no operations and no inputs there is no value to
// return and Evaluate reports ErrEmptyGraph.
func Evaluate(nodes []Node, inputs []float64) (float64, error) {
	p, err := run(nodes, inputs, false)
	if err != nil {
		return 0, err
	}
	return p.value(), nil
}

// EvaluateWithGradient runs the forward pass and returns the final value
// together with an exclusively-owned gradient function. The function may
// be invoked any number of times with different seed cotangents; it owns
// copies of everything it needs and stays valid after the node list or
// input slice is modified.
func EvaluateWithGradient(nodes []Node, inputs []float64) (float64, GradientFunc, error) {
	p, err := run(nodes, inputs, true)
	if err != nil {
		return 0, nil, err
	}
	return p.value(), p.backward, nil
}

// EvaluateWithSharedGradient is EvaluateWithGradient returning the shared,
// clonable form of the gradient callable. Use it when several owners need
// to invoke the same gradient, possibly concurrently.
func EvaluateWithSharedGradient(nodes []Node, inputs []float64) (float64, *SharedGradient, error) {
	p, err := run(nodes, inputs, true)
	if err != nil {
		return 0, nil, err
	}
	return p.value(), &SharedGradient{prog: p}, nil
}

// run is the single forward sweep shared by all entry points. With
// withGrad set it captures one backward record per non-placeholder node,
// in evaluation order.
//
// Every node is validated before its rule executes: argument count against
// the catalog arity, then each predecessor index against the current tape
// length. Validation failures abort the whole computation; no partial tape
// is ever observable.
func run(nodes []Node, inputs []float64, withGrad bool) (*program, error) {
	if len(nodes) == 0 && len(inputs) == 0 {
		return nil, ErrEmptyGraph
	}

	p := &program{
		tape:      make([]float64, len(inputs), len(inputs)+len(nodes)),
		numInputs: len(inputs),
	}
	copy(p.tape, inputs)
	if withGrad {
		p.records = make([]record, 0, len(nodes))
	}

	for _, n := range nodes {
		if err := checkArity(n.Op, len(n.Args)); err != nil {
			return nil, err
		}
		if err := checkIndices(n.Args, len(p.tape)); err != nil {
			return nil, err
		}
		if n.Op == Inp {
			// Placeholder: the referenced value is already on the tape.
			continue
		}

		vals := make([]float64, len(n.Args))
		for j, idx := range n.Args {
			vals[j] = p.tape[idx]
		}
		p.tape = append(p.tape, n.Op.forward(vals))

		if withGrad {
			args := make([]int, len(n.Args))
			copy(args, n.Args)
			p.records = append(p.records, record{op: n.Op, args: args, vals: vals})
		}
	}
	return p, nil
}
