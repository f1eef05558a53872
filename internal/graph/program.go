package graph

// record is one entry of the backward arena: the operation tag, the tape
// positions it read, and the argument values it saw during the forward
// pass. Records replace the chained backward closures a naive tape would
// build; everything a gradient needs to stay valid is right here.
type record struct {
	op   Op
	args []int
	vals []float64
}

// program is the completed result of one recording forward pass: the full
// value tape plus one record per non-placeholder node, in evaluation
// order. A program is immutable after construction, which is what makes
// gradient handles safe to invoke concurrently without locks.
type program struct {
	tape      []float64
	records   []record
	numInputs int
}

// value returns the last tape entry, the graph's final output.
func (p *program) value() float64 {
	if len(p.tape) == 0 {
		return 0
	}
	return p.tape[len(p.tape)-1]
}

// backward runs one backward sweep with the given seed cotangent and
// returns the cotangents of the input positions, one per input.
//
// Each invocation allocates its own cotangent buffer, zeroed except for
// the seed at the final position, then walks the records in reverse: the
// record at reverse position i produced tape position numInputs+i, so its
// accumulated cotangent is read from there, pushed through the local
// gradient rule, and the per-argument results are added into the
// predecessor slots. Addition, not assignment: a position consumed by
// several downstream nodes must sum every incoming contribution, which is
// exactly what makes shared subexpressions (the diamond case) come out
// right.
//
// Invocations are independent: same seed, same result, any number of
// times, from any number of goroutines.
func (p *program) backward(seed float64) []float64 {
	cot := make([]float64, len(p.tape))
	cot[len(cot)-1] = seed

	for i := len(p.records) - 1; i >= 0; i-- {
		rec := &p.records[i]
		d := rec.op.partials(rec.vals, cot[p.numInputs+i])
		for j, arg := range rec.args {
			cot[arg] += d[j]
		}
	}

	grads := make([]float64, p.numInputs)
	copy(grads, cot[:p.numInputs])
	return grads
}

// GradientFunc is the exclusively-owned form of the gradient callable:
// a plain function value held by a single owner. Invoking it with a seed
// cotangent (1.0 for the full derivative) returns the gradient with
// respect to every input, in input order.
//
// The function is pure: it captures an immutable program and allocates a
// private buffer per call, so repeated invocations never interfere.
type GradientFunc func(seed float64) []float64

// SharedGradient is the shared form of the gradient callable. Clones are
// cheap handles onto one immutable program; any clone may be invoked from
// any goroutine concurrently. Behavior is identical to the exclusive form
// in every observable way.
type SharedGradient struct {
	prog *program
}

// Apply runs the backward sweep with the given seed cotangent and returns
// the gradient with respect to every input, in input order.
func (g *SharedGradient) Apply(seed float64) []float64 {
	return g.prog.backward(seed)
}

// Clone returns a new handle onto the same gradient program.
func (g *SharedGradient) Clone() *SharedGradient {
	return &SharedGradient{prog: g.prog}
}

// NumInputs returns the length of the gradient vector Apply produces.
func (g *SharedGradient) NumInputs() int {
	return g.prog.numInputs
}
