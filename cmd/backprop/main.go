// Command backprop demonstrates the differentiation engine: it evaluates
// the showcase function f(x, y) = sin(x) * (x + y) at the given inputs and
// prints the value together with the gradient produced by the backward
// sweep.
package main

import (
	"fmt"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"

	"github.com/backprop-ml/backprop/chain"
	"github.com/backprop-ml/backprop/graph"
)

const version = "v0.1.0"

type options struct {
	X       float64 `arg:"positional" default:"0.6" help:"first input"`
	Y       float64 `arg:"positional" default:"1.4" help:"second input"`
	Seed    float64 `arg:"--seed" default:"1.0" help:"seed cotangent for the backward sweep"`
	Verbose bool    `arg:"-v,--verbose" help:"log the node list and tape positions"`
}

func (options) Version() string {
	return "backprop " + version
}

func main() {
	var opts options
	arg.MustParse(&opts)

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// f(x, y) = sin(x) * (x + y)
	b := graph.NewBuilder(2)
	b.Add(0, 1) // x + y at position 2
	b.Sin(0)    // sin(x) at position 3
	b.Mul(2, 3)
	nodes := b.Build()

	for i, n := range nodes {
		log.WithFields(log.Fields{"node": i, "op": n.Op.String(), "args": n.Args}).Debug("graph node")
	}

	inputs := []float64{opts.X, opts.Y}
	value, grad, err := graph.EvaluateWithGradient(nodes, inputs)
	if err != nil {
		log.Fatalf("evaluate: %s", err)
	}
	g := grad(opts.Seed)

	fmt.Printf("f(x, y) = sin(x) * (x + y)\n")
	fmt.Printf("f(%g, %g) = %g\n", opts.X, opts.Y, value)
	fmt.Printf("df/dx = %g\ndf/dy = %g\n", g[0], g[1])

	// Same engine, single-input form: g(x) = exp(sin(sin(x))).
	ops := []chain.Op{chain.Sin, chain.Sin, chain.Exp}
	cv, cg := chain.ComputeGrad(ops, opts.X)
	fmt.Printf("\ng(x) = exp(sin(sin(x)))\n")
	fmt.Printf("g(%g) = %g\ndg/dx = %g\n", opts.X, cv, cg(opts.Seed))
}
