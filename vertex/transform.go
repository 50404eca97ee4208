package vertex

import (
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/glmat/mat"
)

// Transform applies m to the position of every vertex in buf in place.
func Transform(buf []float32, stride, offset int, m mat.Mat4) error {
	it, err := NewVec3Iterator(buf, stride, offset)
	if err != nil {
		return err
	}
	for ; it.IsValid(); it.Incr() {
		it.SetVec3(m.Transform(it.Vec3()))
	}
	return nil
}

// MinMax returns the component-wise minimum and maximum vertex positions.
func MinMax(buf []float32, stride, offset int) (mat.Vec3, mat.Vec3, error) {
	ra, err := NewVec3RandomAccessor(buf, stride, offset)
	if err != nil {
		return mat.Vec3{}, mat.Vec3{}, err
	}
	if ra.Len() == 0 {
		return mat.Vec3{}, mat.Vec3{}, ErrNoVertex
	}
	min, max, err := pc.MinMaxVec3(ra)
	if err != nil {
		return mat.Vec3{}, mat.Vec3{}, err
	}
	return mat.Vec3(min), mat.Vec3(max), nil
}
