package mat

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FromMgl32 converts an mgl32 matrix. mgl32 stores column-major matrices for
// column vectors, which has the same memory layout as Mat4, so this is a copy.
func FromMgl32(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

func (m Mat4) Mgl32() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

func Vec3FromMgl32(v mgl32.Vec3) Vec3 {
	return Vec3(v)
}

func (v Vec3) Mgl32() mgl32.Vec3 {
	return mgl32.Vec3(v)
}
