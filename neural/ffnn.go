// Package neural provides the fixed-topology feedforward networks that steer
// and fire each turret, along with their mutation operators and persistence.
package neural

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewLayers is returned when a network is requested with fewer than
	// an input and an output layer.
	ErrTooFewLayers = errors.New("neural: network needs at least an input and an output layer")
	// ErrInputSize is returned by Infer when the input length does not match.
	ErrInputSize = errors.New("neural: input length does not match network input size")
	// ErrShape is returned when decoded weights do not form a valid chain of layers.
	ErrShape = errors.New("neural: inconsistent layer shapes")
)

// Network is a multilayer perceptron with one weight matrix and one bias
// vector per layer transition. Every layer uses tanh activation.
type Network struct {
	inputSize  int
	outputSize int
	weights    []*mat.Dense    // weights[i] is (layer i+1) x (layer i)
	biases     []*mat.VecDense // biases[i] has length of layer i+1
}

// NewRandom validates layerSizes and returns a network with random weights.
func NewRandom(rng *rand.Rand, layerSizes []int) (*Network, error) {
	if len(layerSizes) < 2 {
		return nil, fmt.Errorf("%w: got %d layer sizes", ErrTooFewLayers, len(layerSizes))
	}
	for i, s := range layerSizes {
		if s < 1 {
			return nil, fmt.Errorf("neural: layer %d has size %d, want >= 1", i, s)
		}
	}
	return NewRandomUnchecked(rng, layerSizes), nil
}

// NewRandomUnchecked builds a random network without validating layerSizes.
// Entries are drawn uniformly from [0, 1) and are not clamped.
func NewRandomUnchecked(rng *rand.Rand, layerSizes []int) *Network {
	n := &Network{
		inputSize:  layerSizes[0],
		outputSize: layerSizes[len(layerSizes)-1],
		weights:    make([]*mat.Dense, 0, len(layerSizes)-1),
		biases:     make([]*mat.VecDense, 0, len(layerSizes)-1),
	}

	for i := 1; i < len(layerSizes); i++ {
		rows, cols := layerSizes[i], layerSizes[i-1]

		w := make([]float64, rows*cols)
		for j := range w {
			w[j] = rng.Float64()
		}
		b := make([]float64, rows)
		for j := range b {
			b[j] = rng.Float64()
		}

		n.weights = append(n.weights, mat.NewDense(rows, cols, w))
		n.biases = append(n.biases, mat.NewVecDense(rows, b))
	}

	return n
}

// InputSize returns the expected input vector length.
func (n *Network) InputSize() int { return n.inputSize }

// OutputSize returns the output vector length.
func (n *Network) OutputSize() int { return n.outputSize }

// Layers returns the number of layer transitions.
func (n *Network) Layers() int { return len(n.weights) }

// LayerSizes returns the size of every layer including input and output.
func (n *Network) LayerSizes() []int {
	sizes := make([]int, 0, len(n.weights)+1)
	sizes = append(sizes, n.inputSize)
	for _, w := range n.weights {
		r, _ := w.Dims()
		sizes = append(sizes, r)
	}
	return sizes
}

// Infer runs a forward pass after checking the input length.
func (n *Network) Infer(input []float64) ([]float64, error) {
	if len(input) != n.inputSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputSize, len(input), n.inputSize)
	}
	return n.InferUnchecked(input), nil
}

// InferUnchecked runs a forward pass: out = tanh(W·in + b) per layer.
// The caller guarantees len(input) == InputSize(); this is the simulation hot path.
func (n *Network) InferUnchecked(input []float64) []float64 {
	x := mat.NewVecDense(len(input), input)
	for i, w := range n.weights {
		rows, _ := w.Dims()
		y := mat.NewVecDense(rows, nil)
		y.MulVec(w, x)
		y.AddVec(y, n.biases[i])

		raw := y.RawVector().Data
		for j := range raw {
			raw[j] = math.Tanh(raw[j])
		}
		x = y
	}
	return x.RawVector().Data
}

// Mutate adds a uniform perturbation in (-maxDelta, maxDelta) to every weight
// and bias, then clamps each value to [-1, 1]. A non-positive maxDelta only clamps.
func (n *Network) Mutate(rng *rand.Rand, maxDelta float64) {
	perturb := func(v float64) float64 {
		if maxDelta > 0 {
			v += openUniform(rng) * maxDelta
		}
		return clamp(v, -1, 1)
	}

	for _, w := range n.weights {
		w.Apply(func(_, _ int, v float64) float64 { return perturb(v) }, w)
	}
	for _, b := range n.biases {
		raw := b.RawVector()
		for j := 0; j < raw.N; j++ {
			raw.Data[j*raw.Inc] = perturb(raw.Data[j*raw.Inc])
		}
	}
}

// Clone creates a deep copy of the network.
func (n *Network) Clone() *Network {
	clone := &Network{
		inputSize:  n.inputSize,
		outputSize: n.outputSize,
		weights:    make([]*mat.Dense, len(n.weights)),
		biases:     make([]*mat.VecDense, len(n.biases)),
	}
	for i := range n.weights {
		clone.weights[i] = mat.DenseCopyOf(n.weights[i])
		clone.biases[i] = mat.VecDenseCopyOf(n.biases[i])
	}
	return clone
}

// Equal reports whether both networks have identical shapes and bit-identical values.
func (n *Network) Equal(o *Network) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.inputSize != o.inputSize || n.outputSize != o.outputSize || len(n.weights) != len(o.weights) {
		return false
	}
	for i := range n.weights {
		if !mat.Equal(n.weights[i], o.weights[i]) || !mat.Equal(n.biases[i], o.biases[i]) {
			return false
		}
	}
	return true
}

// Bounds returns the smallest and largest weight or bias value in the network.
func (n *Network) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i, w := range n.weights {
		lo = math.Min(lo, mat.Min(w))
		hi = math.Max(hi, mat.Max(w))
		lo = math.Min(lo, mat.Min(n.biases[i]))
		hi = math.Max(hi, mat.Max(n.biases[i]))
	}
	return lo, hi
}

// openUniform draws from (-1, 1). Float64 can return exactly 0, which would
// map to -1, so that draw is redone.
func openUniform(rng *rand.Rand) float64 {
	for {
		if u := rng.Float64(); u != 0 {
			return u*2 - 1
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
