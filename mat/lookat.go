package mat

import (
	"github.com/chewxy/math32"
)

// DegenerateEpsilon is the per-axis distance under which LookAt treats the
// eye and the target as the same point.
const DegenerateEpsilon = 0.0001

// LookAt returns a view matrix for a camera at eye looking at target.
//
// Degenerate inputs do not fail:
//   - eye and target closer than DegenerateEpsilon on every axis give Identity().
//   - up parallel to the viewing direction gives a zero right axis, and the
//     north axis derived from it is zero as well.
func LookAt(eye, target, up Vec3) Mat4 {
	if math32.Abs(eye[0]-target[0]) < DegenerateEpsilon &&
		math32.Abs(eye[1]-target[1]) < DegenerateEpsilon &&
		math32.Abs(eye[2]-target[2]) < DegenerateEpsilon {
		return Identity()
	}

	forward := eye.Sub(target).Normalized()
	right := normalizeOrZero(up.Cross(forward))
	north := normalizeOrZero(forward.Cross(right))

	return Mat4{
		right[0], north[0], forward[0], 0,
		right[1], north[1], forward[1], 0,
		right[2], north[2], forward[2], 0,
		-right.Dot(eye), -north.Dot(eye), -forward.Dot(eye), 1,
	}
}

// normalizeOrZero returns v scaled to unit length, or the zero vector if v
// has zero length.
func normalizeOrZero(v Vec3) Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Mul(1 / n)
}
