package atmosphere

import "fmt"

// NDArray is a dense n-dimensional array of float64 in row-major order.
// An empty (or nil) Shape denotes a 0-dimensional array holding a single
// value, which the evaluator keeps 0-dimensional in its outputs.
type NDArray struct {
	Shape []int
	Data  []float64
}

// Scalar0d wraps a single value as a 0-dimensional array.
func Scalar0d(v float64) *NDArray {
	return &NDArray{Data: []float64{v}}
}

// NewNDArray builds an array of the given shape over data, which must hold
// exactly the product of the shape's dimensions (1 for a 0-d shape). The
// slices are retained, not copied.
func NewNDArray(shape []int, data []float64) (*NDArray, error) {
	a := &NDArray{Shape: shape, Data: data}
	if err := a.check(); err != nil {
		return nil, err
	}
	return a, nil
}

// Size returns the number of elements; a 0-d array has size 1.
func (a *NDArray) Size() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// IsScalar reports whether the array is 0-dimensional.
func (a *NDArray) IsScalar() bool {
	return len(a.Shape) == 0
}

// Float returns the value of a 0-d array.
func (a *NDArray) Float() float64 {
	return a.Data[0]
}

func (a *NDArray) check() error {
	for _, d := range a.Shape {
		if d < 0 {
			return fmt.Errorf("%w: negative dimension %d", ErrShape, d)
		}
	}
	if len(a.Data) != a.Size() {
		return fmt.Errorf("%w: shape %v wants %d elements, data holds %d", ErrShape, a.Shape, a.Size(), len(a.Data))
	}
	return nil
}

// withData builds a new array sharing a's shape over freshly computed data.
func (a *NDArray) withData(data []float64) *NDArray {
	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	return &NDArray{Shape: shape, Data: data}
}
