package mat

import (
	"github.com/chewxy/math32"
)

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a counter-clockwise rotation of ang radians around the x axis.
func RotateX(ang float32) Mat4 {
	s, c := math32.Sincos(ang)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a counter-clockwise rotation of ang radians around the y axis.
func RotateY(ang float32) Mat4 {
	s, c := math32.Sincos(ang)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a counter-clockwise rotation of ang radians around the z axis.
func RotateZ(ang float32) Mat4 {
	s, c := math32.Sincos(ang)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns RotateZ(z).Mul(RotateY(y)).Mul(RotateX(x)) expanded in
// closed form. Applied to a point, the z rotation comes first and the x
// rotation last.
func Rotate(x, y, z float32) Mat4 {
	sx, cx := math32.Sincos(x)
	sy, cy := math32.Sincos(y)
	sz, cz := math32.Sincos(z)

	return Mat4{
		cy * cz, cx*sz + sx*sy*cz, sx*sz - cx*sy*cz, 0,
		-cy * sz, cx*cz - sx*sy*sz, sx*cz + cx*sy*sz, 0,
		sy, -sx * cy, cx * cy, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis returns a counter-clockwise rotation of ang radians around axis.
// The axis is normalized first; a zero axis gives the identity.
func RotateAxis(axis Vec3, ang float32) Mat4 {
	axis = normalizeOrZero(axis)
	if axis == (Vec3{}) {
		return Identity()
	}
	x, y, z := axis[0], axis[1], axis[2]
	s, c := math32.Sincos(ang)
	t := 1 - c

	return Mat4{
		c + x*x*t, x*y*t + z*s, x*z*t - y*s, 0,
		x*y*t - z*s, c + y*y*t, y*z*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
}
