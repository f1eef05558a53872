package graph

// Builder constructs node lists without hand-tracking tape positions.
// Methods append one node each and return the builder for chaining;
// NextIndex reports the position the next non-placeholder node will
// occupy.
//
//	// f(x, y) = sin(x) * (x + y)
//	b := NewBuilder(2)
//	b.Add(0, 1) // x + y at position 2
//	b.Sin(0)    // sin(x) at position 3
//	b.Mul(2, 3)
//	value, grad, err := EvaluateWithGradient(b.Build(), []float64{0.6, 1.4})
//
// The builder performs no validation; arity and index checks belong to the
// evaluator and run when the graph is used.
type Builder struct {
	numInputs int
	nodes     []Node
	nextIndex int
}

// NewBuilder returns a builder for a graph over numInputs inputs. Input
// positions 0..numInputs-1 are available immediately.
func NewBuilder(numInputs int) *Builder {
	return &Builder{
		numInputs: numInputs,
		nextIndex: numInputs,
	}
}

// Push appends an arbitrary node. It is the escape hatch behind every
// named method below.
func (b *Builder) Push(op Op, args ...int) *Builder {
	b.nodes = append(b.nodes, Node{Op: op, Args: args})
	if op != Inp {
		b.nextIndex++
	}
	return b
}

// Input appends a placeholder referencing input position i. Rarely needed:
// inputs are addressable without it. It exists for graphs written in the
// explicit style where every input is named up front.
func (b *Builder) Input(i int) *Builder { return b.Push(Inp, i) }

// Add appends l + r.
func (b *Builder) Add(l, r int) *Builder { return b.Push(Add, l, r) }

// Sub appends l - r.
func (b *Builder) Sub(l, r int) *Builder { return b.Push(Sub, l, r) }

// Mul appends l * r.
func (b *Builder) Mul(l, r int) *Builder { return b.Push(Mul, l, r) }

// Div appends l / r.
func (b *Builder) Div(l, r int) *Builder { return b.Push(Div, l, r) }

// Pow appends base ^ exp.
func (b *Builder) Pow(base, exp int) *Builder { return b.Push(Pow, base, exp) }

// Sin appends sin(i).
func (b *Builder) Sin(i int) *Builder { return b.Push(Sin, i) }

// Cos appends cos(i).
func (b *Builder) Cos(i int) *Builder { return b.Push(Cos, i) }

// Tan appends tan(i).
func (b *Builder) Tan(i int) *Builder { return b.Push(Tan, i) }

// Exp appends e^i.
func (b *Builder) Exp(i int) *Builder { return b.Push(Exp, i) }

// Ln appends the natural logarithm of i.
func (b *Builder) Ln(i int) *Builder { return b.Push(Ln, i) }

// Sqrt appends the square root of i.
func (b *Builder) Sqrt(i int) *Builder { return b.Push(Sqrt, i) }

// Abs appends the absolute value of i.
func (b *Builder) Abs(i int) *Builder { return b.Push(Abs, i) }

// Build returns a copy of the accumulated node list. The builder remains
// usable; later appends do not affect graphs already built.
func (b *Builder) Build() []Node {
	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	return nodes
}

// Len returns the number of nodes appended so far, placeholders included.
func (b *Builder) Len() int { return len(b.nodes) }

// IsEmpty reports whether no nodes have been appended.
func (b *Builder) IsEmpty() bool { return len(b.nodes) == 0 }

// NextIndex returns the tape position the next non-placeholder node will
// occupy.
func (b *Builder) NextIndex() int { return b.nextIndex }
