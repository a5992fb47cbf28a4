package neural

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// NetworkWeights holds per-layer network weights for serialization.
// Weights[i] is row-major with one row per neuron of layer i+1.
type NetworkWeights struct {
	InputSize  int           `json:"input_size"`
	OutputSize int           `json:"output_size"`
	Weights    [][][]float64 `json:"weights"`
	Biases     [][]float64   `json:"biases"`
}

// MarshalWeights copies the network weights into serializable form.
func (n *Network) MarshalWeights() NetworkWeights {
	nw := NetworkWeights{
		InputSize:  n.inputSize,
		OutputSize: n.outputSize,
		Weights:    make([][][]float64, len(n.weights)),
		Biases:     make([][]float64, len(n.biases)),
	}
	for i, w := range n.weights {
		rows, _ := w.Dims()
		nw.Weights[i] = make([][]float64, rows)
		for r := 0; r < rows; r++ {
			nw.Weights[i][r] = mat.Row(nil, r, w)
		}
		nw.Biases[i] = mat.Col(nil, 0, n.biases[i])
	}
	return nw
}

// NetworkFromWeights rebuilds a network, rejecting shapes that do not chain.
func NetworkFromWeights(nw NetworkWeights) (*Network, error) {
	if len(nw.Weights) == 0 {
		return nil, ErrTooFewLayers
	}
	if len(nw.Weights) != len(nw.Biases) {
		return nil, fmt.Errorf("%w: %d weight layers, %d bias layers", ErrShape, len(nw.Weights), len(nw.Biases))
	}
	if nw.InputSize < 1 || nw.OutputSize < 1 {
		return nil, fmt.Errorf("%w: input size %d, output size %d", ErrShape, nw.InputSize, nw.OutputSize)
	}

	n := &Network{
		inputSize:  nw.InputSize,
		outputSize: nw.OutputSize,
		weights:    make([]*mat.Dense, len(nw.Weights)),
		biases:     make([]*mat.VecDense, len(nw.Biases)),
	}

	cols := nw.InputSize
	for i, layer := range nw.Weights {
		rows := len(layer)
		if rows == 0 || cols < 1 {
			return nil, fmt.Errorf("%w: layer %d is empty", ErrShape, i)
		}
		if len(nw.Biases[i]) != rows {
			return nil, fmt.Errorf("%w: layer %d has %d rows but %d biases", ErrShape, i, rows, len(nw.Biases[i]))
		}

		for r, row := range layer {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: layer %d row %d has %d columns, want %d", ErrShape, i, r, len(row), cols)
			}
		}
		data := make([]float64, 0, rows*cols)
		for _, row := range layer {
			data = append(data, row...)
		}

		n.weights[i] = mat.NewDense(rows, cols, data)
		n.biases[i] = mat.NewVecDense(rows, append([]float64(nil), nw.Biases[i]...))
		cols = rows
	}

	if cols != nw.OutputSize {
		return nil, fmt.Errorf("%w: last layer has %d neurons, output size is %d", ErrShape, cols, nw.OutputSize)
	}
	return n, nil
}

// MarshalJSON encodes the network as NetworkWeights.
func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.MarshalWeights())
}

// UnmarshalJSON decodes NetworkWeights and validates their shapes.
func (n *Network) UnmarshalJSON(data []byte) error {
	var nw NetworkWeights
	if err := json.Unmarshal(data, &nw); err != nil {
		return err
	}
	decoded, err := NetworkFromWeights(nw)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

// FileName returns the weight file name for a population, e.g. "direction_ais_10.json".
func FileName(prefix string, populationSize int) string {
	return fmt.Sprintf("%s_%d.json", prefix, populationSize)
}

// SaveNetworks writes the networks to path as a JSON array in candidate order.
func SaveNetworks(path string, nets []*Network) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create weights dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(nets, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal networks: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write networks: %w", err)
	}
	return nil
}

// LoadNetworks reads a JSON array of networks and checks it holds exactly
// count networks with the given input and output sizes.
func LoadNetworks(path string, count, inputSize, outputSize int) ([]*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read networks: %w", err)
	}

	var nets []*Network
	if err := json.Unmarshal(data, &nets); err != nil {
		return nil, fmt.Errorf("unmarshal networks: %w", err)
	}

	if len(nets) != count {
		return nil, fmt.Errorf("%s holds %d networks, want %d", path, len(nets), count)
	}
	for i, n := range nets {
		if n == nil {
			return nil, fmt.Errorf("%s: network %d is null", path, i)
		}
		if n.inputSize != inputSize || n.outputSize != outputSize {
			return nil, fmt.Errorf("%w: network %d is %dx%d, want %dx%d",
				ErrShape, i, n.inputSize, n.outputSize, inputSize, outputSize)
		}
	}
	return nets, nil
}
