package hex

import (
	"fmt"
	"strings"
)

// Transform is a linear symmetry of the hex lattice, held as a 3×3 integer
// matrix over cube coordinates (q, r, s). Only the 12 group elements returned
// by Transforms (and their products) are ever constructed.
type Transform struct {
	m [3][3]int
}

var (
	// Identity leaves every coordinate unchanged.
	Identity = Transform{m: [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

	// Reflection swaps the Q and R axes.
	Reflection = Transform{m: [3][3]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}}

	// sixth is one sixth-turn: (q, r, s) -> (-r, -s, -q).
	sixth = Transform{m: [3][3]int{{0, -1, 0}, {0, 0, -1}, {-1, 0, 0}}}
)

// Rotation returns the rotation by k sixth-turns. Rotation(1) maps each
// Direction d onto d+1; negative k rotates the other way.
func Rotation(k int) Transform {
	k = ((k % 6) + 6) % 6
	t := Identity
	for i := 0; i < k; i++ {
		t = sixth.Compose(t)
	}
	return t
}

// Transforms returns the standard 12-element symmetry set: the six rotations
// followed by Reflection composed with each rotation.
func Transforms() []Transform {
	out := make([]Transform, 0, 12)
	for k := 0; k < 6; k++ {
		out = append(out, Rotation(k))
	}
	for k := 0; k < 6; k++ {
		out = append(out, Rotation(k).Compose(Reflection))
	}
	return out
}

// Rotations returns only the six rotations.
func Rotations() []Transform {
	out := make([]Transform, 0, 6)
	for k := 0; k < 6; k++ {
		out = append(out, Rotation(k))
	}
	return out
}

// Apply maps c through the transform.
// Complexity: O(1).
func (t Transform) Apply(c Coord) Coord {
	v := [3]int{c.Q, c.R, c.S()}
	var out [3]int
	for i := 0; i < 3; i++ {
		out[i] = t.m[i][0]*v[0] + t.m[i][1]*v[1] + t.m[i][2]*v[2]
	}
	return FromCube(out[0], out[1], out[2])
}

// Compose returns the matrix product t·o, i.e. the transform that applies o
// first and then t.
func (t Transform) Compose(o Transform) Transform {
	var p Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p.m[i][j] += t.m[i][k] * o.m[k][j]
			}
		}
	}
	return p
}

// Inverse returns the transform undoing t. Every lattice symmetry is a
// signed permutation matrix, so the inverse is the transpose.
func (t Transform) Inverse() Transform {
	var inv Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.m[i][j] = t.m[j][i]
		}
	}
	return inv
}

// Equal reports whether both transforms are the same group element.
func (t Transform) Equal(o Transform) bool {
	return t.m == o.m
}

func (t Transform) String() string {
	rows := make([]string, 3)
	for i, row := range t.m {
		rows[i] = fmt.Sprintf("%d %d %d", row[0], row[1], row[2])
	}
	return "[" + strings.Join(rows, "; ") + "]"
}
