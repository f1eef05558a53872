package graph_test

import (
	"testing"

	"github.com/backprop-ml/backprop/internal/graph"
)

// showcase is f(x, y) = sin(x) * (x + y), the five-node demo graph.
func showcase() []graph.Node {
	b := graph.NewBuilder(2)
	b.Input(0)
	b.Input(1)
	b.Add(0, 1)
	b.Sin(0)
	b.Mul(2, 3)
	return b.Build()
}

// wide builds a graph of n Mul nodes all consuming the two inputs and the
// previous result, exercising accumulation-heavy backward sweeps.
func wide(n int) []graph.Node {
	b := graph.NewBuilder(2)
	prev := 0
	for i := 0; i < n; i++ {
		b.Mul(prev, 1)
		prev = b.NextIndex() - 1
	}
	return b.Build()
}

func BenchmarkEvaluate(b *testing.B) {
	inputs := []float64{0.6, 1.4}

	b.Run("Showcase", func(b *testing.B) {
		nodes := showcase()
		for i := 0; i < b.N; i++ {
			_, _ = graph.Evaluate(nodes, inputs)
		}
	})

	b.Run("Wide100", func(b *testing.B) {
		nodes := wide(100)
		for i := 0; i < b.N; i++ {
			_, _ = graph.Evaluate(nodes, inputs)
		}
	})
}

func BenchmarkEvaluateWithGradient(b *testing.B) {
	inputs := []float64{0.6, 1.4}

	b.Run("Showcase", func(b *testing.B) {
		nodes := showcase()
		for i := 0; i < b.N; i++ {
			_, _, _ = graph.EvaluateWithGradient(nodes, inputs)
		}
	})

	b.Run("Wide100", func(b *testing.B) {
		nodes := wide(100)
		for i := 0; i < b.N; i++ {
			_, _, _ = graph.EvaluateWithGradient(nodes, inputs)
		}
	})
}

func BenchmarkGradientApply(b *testing.B) {
	inputs := []float64{0.6, 1.4}

	b.Run("Exclusive", func(b *testing.B) {
		_, grad, _ := graph.EvaluateWithGradient(showcase(), inputs)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = grad(1.0)
		}
	})

	b.Run("Shared", func(b *testing.B) {
		_, shared, _ := graph.EvaluateWithSharedGradient(showcase(), inputs)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = shared.Apply(1.0)
		}
	})

	b.Run("Wide100", func(b *testing.B) {
		_, grad, _ := graph.EvaluateWithGradient(wide(100), inputs)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = grad(1.0)
		}
	})
}
