package cloud

import (
	"github.com/seqsense/glmat/mat"
)

// Rect is an axis-aligned box.
type Rect struct {
	Min, Max mat.Vec3
}

func float32Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func float32Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Intersection returns the overlap of r and a. The result is not valid if
// they do not overlap.
func (r Rect) Intersection(a Rect) Rect {
	return Rect{
		Min: mat.Vec3{
			float32Max(r.Min[0], a.Min[0]),
			float32Max(r.Min[1], a.Min[1]),
			float32Max(r.Min[2], a.Min[2]),
		},
		Max: mat.Vec3{
			float32Min(r.Max[0], a.Max[0]),
			float32Min(r.Max[1], a.Max[1]),
			float32Min(r.Max[2], a.Max[2]),
		},
	}
}

func (r Rect) IsValid() bool {
	return !(r.Min[0] > r.Max[0] ||
		r.Min[1] > r.Max[1] ||
		r.Min[2] > r.Max[2])
}

func (r Rect) IsInside(v mat.Vec3) bool {
	return !(v[0] < r.Min[0] ||
		v[1] < r.Min[1] ||
		v[2] < r.Min[2] ||
		r.Max[0] < v[0] ||
		r.Max[1] < v[1] ||
		r.Max[2] < v[2])
}

// Transform returns the axis-aligned box enclosing the eight corners of r
// transformed by m.
func (r Rect) Transform(m mat.Mat4) Rect {
	var out Rect
	for i := 0; i < 8; i++ {
		c := r.Min
		for k := 0; k < 3; k++ {
			if i&(1<<k) != 0 {
				c[k] = r.Max[k]
			}
		}
		p := m.Transform(c)
		if i == 0 {
			out = Rect{Min: p, Max: p}
			continue
		}
		for k := range p {
			out.Min[k] = float32Min(out.Min[k], p[k])
			out.Max[k] = float32Max(out.Max[k], p[k])
		}
	}
	return out
}
