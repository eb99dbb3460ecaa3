package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// NodalMatrix wraps a sparse complex matrix for steady-state nodal
// analysis. Rows 1..Size hold node equations followed by source branch
// equations. The right-hand side and solution vectors interleave real
// and imaginary parts: entry i lives at indices 2i and 2i+1.
type NodalMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewComplex(size int) (*NodalMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &NodalMatrix{
		Size:   size,
		matrix: mat,
		rhs:    make([]float64, 2*(size+1)),
		config: config,
	}, nil
}

func (m *NodalMatrix) AddComplexElement(i, j int, real, imag float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real
	element.Imag += imag
}

func (m *NodalMatrix) AddComplexRHS(i int, real, imag float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[2*i] += real
	m.rhs[2*i+1] += imag
}

func (m *NodalMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *NodalMatrix) Solve() error {
	err := m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.solution, _, err = m.matrix.SolveComplex(m.rhs, nil)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

// ComplexSolution returns entry i of the last solve.
func (m *NodalMatrix) ComplexSolution(i int) complex128 {
	if m.solution == nil || i <= 0 || i > m.Size {
		return 0
	}
	return complex(m.solution[2*i], m.solution[2*i+1])
}

func (m *NodalMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
