package cloud

import (
	"errors"
	"fmt"

	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/glmat/mat"
)

var ErrNoPoint = errors.New("no point")

type transformedVec3RandomAccessor struct {
	pc.Vec3RandomAccessor
	trans mat.Mat4
}

func (a *transformedVec3RandomAccessor) Vec3At(i int) pcmat.Vec3 {
	return ToPCGoLVec3(a.trans.Transform(FromPCGoLVec3(a.Vec3RandomAccessor.Vec3At(i))))
}

// Transformed returns a view of ra with every point transformed by m.
// Points are transformed on access; ra is not modified.
func Transformed(ra pc.Vec3RandomAccessor, m mat.Mat4) pc.Vec3RandomAccessor {
	return &transformedVec3RandomAccessor{
		Vec3RandomAccessor: ra,
		trans:              m,
	}
}

// Bounds returns the axis-aligned bounding box of ra after transforming it by m.
func Bounds(ra pc.Vec3RandomAccessor, m mat.Mat4) (Rect, error) {
	if ra.Len() == 0 {
		return Rect{}, ErrNoPoint
	}
	min, max, err := pc.MinMaxVec3(Transformed(ra, m))
	if err != nil {
		return Rect{}, fmt.Errorf("bounds: %w", err)
	}
	return Rect{Min: FromPCGoLVec3(min), Max: FromPCGoLVec3(max)}, nil
}

// TransformInPlace overwrites every point of pp with its transformed position.
func TransformInPlace(pp *pc.PointCloud, m mat.Mat4) error {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return err
	}
	for ; it.IsValid(); it.Incr() {
		it.SetVec3(ToPCGoLVec3(m.Transform(FromPCGoLVec3(it.Vec3()))))
	}
	return nil
}
