package mat

import (
	webgl "github.com/seqsense/webgl-go"
)

var (
	_ webgl.Mat4 = Mat4{}
	_ webgl.Vec3 = Vec3{}
)

// Floats returns the elements in the order expected by UniformMatrix4fv
// with transpose=false.
func (m Mat4) Floats() [16]float32 {
	return m
}

func (v Vec3) Floats() [3]float32 {
	return v
}
