// Package vertex iterates and transforms positions stored in interleaved
// float32 vertex buffers.
package vertex

import (
	"errors"
	"fmt"

	"github.com/seqsense/glmat/mat"
)

var (
	ErrInvalidStride = errors.New("invalid stride")
	ErrNoVertex      = errors.New("no vertex")
)

// Vec3Iterator walks the xyz position of each vertex in a buffer.
// stride is the number of float32 values per vertex and offset the index of
// x within a vertex.
type Vec3Iterator struct {
	data   []float32
	pos    int
	stride int
}

func NewVec3Iterator(buf []float32, stride, offset int) (*Vec3Iterator, error) {
	if stride <= 0 || offset < 0 || offset+3 > stride {
		return nil, fmt.Errorf("stride %d, offset %d: %w", stride, offset, ErrInvalidStride)
	}
	return &Vec3Iterator{
		data:   buf,
		pos:    offset,
		stride: stride,
	}, nil
}

func (i *Vec3Iterator) Incr() {
	i.pos += i.stride
}

func (i *Vec3Iterator) IsValid() bool {
	return i.pos+3 <= len(i.data)
}

func (i *Vec3Iterator) Vec3() mat.Vec3 {
	return mat.Vec3{i.data[i.pos], i.data[i.pos+1], i.data[i.pos+2]}
}

func (i *Vec3Iterator) SetVec3(v mat.Vec3) {
	i.data[i.pos] = v[0]
	i.data[i.pos+1] = v[1]
	i.data[i.pos+2] = v[2]
}
