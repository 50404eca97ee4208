package vertex

import (
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

type vec3RandomAccessor struct {
	data   []float32
	offset int
	stride int
}

// NewVec3RandomAccessor returns a pcgol accessor over the vertex positions in
// buf. The accessor shares memory with buf.
func NewVec3RandomAccessor(buf []float32, stride, offset int) (pc.Vec3RandomAccessor, error) {
	if _, err := NewVec3Iterator(buf, stride, offset); err != nil {
		return nil, err
	}
	return &vec3RandomAccessor{
		data:   buf,
		offset: offset,
		stride: stride,
	}, nil
}

func (a *vec3RandomAccessor) Len() int {
	if len(a.data) < a.offset+3 {
		return 0
	}
	return (len(a.data)-a.offset-3)/a.stride + 1
}

func (a *vec3RandomAccessor) Vec3At(i int) pcmat.Vec3 {
	p := a.offset + i*a.stride
	return pcmat.Vec3{a.data[p], a.data[p+1], a.data[p+2]}
}
