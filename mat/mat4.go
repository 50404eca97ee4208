package mat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

type Mat4 [16]float32

// FromComponents builds a matrix from 16 row-major values.
func FromComponents(v ...float32) (Mat4, error) {
	if len(v) != len(Mat4{}) {
		return Mat4{}, fmt.Errorf("matrix from %d components: %w", len(v), ErrArgumentNumber)
	}
	var out Mat4
	copy(out[:], v)
	return out, nil
}

// FromBuffer copies a 16-element row-major buffer into a new matrix.
// The matrix does not share storage with buf.
func FromBuffer(buf []float32) (Mat4, error) {
	if len(buf) != len(Mat4{}) {
		return Mat4{}, fmt.Errorf("matrix from buffer of length %d: %w", len(buf), ErrArgumentNumber)
	}
	var out Mat4
	copy(out[:], buf)
	return out, nil
}

func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat4) Sub(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

func (m Mat4) MulScalar(s float32) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns m*a. The receiver is the left operand.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[4*i+k] * a[4*k+j]
			}
			out[4*i+j] = sum
		}
	}
	return out
}

// MulAffine returns m*a assuming the last column of both operands is (0, 0, 0, 1).
func (m Mat4) MulAffine(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			out[4*i+j] = m[4*i+0]*a[4*0+j] + m[4*i+1]*a[4*1+j] + m[4*i+2]*a[4*2+j]
		}
	}
	out[12] += a[12]
	out[13] += a[13]
	out[14] += a[14]
	out[15] = 1
	return out
}

// AddAssign adds a to m in place and returns m for chaining.
func (m *Mat4) AddAssign(a Mat4) *Mat4 {
	for i := range m {
		m[i] += a[i]
	}
	return m
}

// SubAssign subtracts a from m in place and returns m for chaining.
func (m *Mat4) SubAssign(a Mat4) *Mat4 {
	for i := range m {
		m[i] -= a[i]
	}
	return m
}

// MulScalarAssign scales every element of m in place and returns m for chaining.
func (m *Mat4) MulScalarAssign(s float32) *Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// MulAssign replaces m with m*a and returns m for chaining.
func (m *Mat4) MulAssign(a Mat4) *Mat4 {
	*m = m.Mul(a)
	return m
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*j+i] = m[4*i+j]
		}
	}
	return out
}

func (m Mat4) Equal(a Mat4) bool {
	return m == a
}

// ApproxEqual reports whether every element of m is within eps of a.
func (m Mat4) ApproxEqual(a Mat4, eps float32) bool {
	for i := range m {
		if !(math32.Abs(m[i]-a[i]) <= eps) {
			return false
		}
	}
	return true
}

func (m Mat4) String() string {
	var rows []string
	for i := 0; i < 4; i++ {
		var row []string
		for j := 0; j < 4; j++ {
			v := m[4*i+j]
			if v == 0 {
				// Drop the sign of negative zero.
				v = 0
			}
			row = append(row, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}
