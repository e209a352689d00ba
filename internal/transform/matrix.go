// Package transform models the 3×3 affine matrix handed to the display tool.
// Matrices are row-major; the display tool expects them flattened to a
// comma-separated argument of nine values.
package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix is a row-major 3×3 affine transform.
type Matrix [9]float64

// Identity returns the no-op transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Shift returns a translation by sx,sy in output pixels.
func Shift(sx, sy float64) Matrix {
	return Matrix{
		1, 0, sx,
		0, 1, sy,
		0, 0, 1,
	}
}

// Normalized returns a translation of sx,sy pixels expressed in the
// resolution-relative coordinates some display stacks expect
// (tx = sx/width, ty = sy/height). Values are rounded to six decimals,
// matching the precision the tool accepts on the command line.
func Normalized(sx, sy float64, width, height int) (Matrix, error) {
	if width <= 0 || height <= 0 {
		return Matrix{}, fmt.Errorf("transform: invalid resolution %dx%d", width, height)
	}
	return Shift(round6(sx/float64(width)), round6(sy/float64(height))), nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Arg flattens the matrix row-major into the a,b,c,d,e,f,g,h,i form the
// display tool takes. Integral values render without a decimal point, so
// Shift(1,1) yields "1,0,1,0,1,1,0,0,1".
func (m Matrix) Arg() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

func (m Matrix) String() string { return m.Arg() }
