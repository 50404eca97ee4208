package cloud

import (
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/glmat/mat"
)

var unitCube = Rect{Max: mat.Vec3{1, 1, 1}}

// Box selects the points that m maps into the unit cube [0, 1]^3.
// Any oriented box can be expressed by translating its corner to the origin,
// rotating it onto the axes and scaling its edges to unit length.
type Box mat.Mat4

func (b Box) Contains(p mat.Vec3) bool {
	return unitCube.IsInside(mat.Mat4(b).Transform(p))
}

// Overlaps reports whether the box may contain a point of r.
// It is conservative: true does not guarantee a point of r is inside.
func (b Box) Overlaps(r Rect) bool {
	return r.Transform(mat.Mat4(b)).Intersection(unitCube).IsValid()
}

// Select returns the indices of the points of ra inside the box.
func (b Box) Select(ra pc.Vec3RandomAccessor) []int {
	r, err := Bounds(ra, mat.Identity())
	if err != nil || !b.Overlaps(r) {
		return nil
	}
	var ids []int
	n := ra.Len()
	for i := 0; i < n; i++ {
		if b.Contains(FromPCGoLVec3(ra.Vec3At(i))) {
			ids = append(ids, i)
		}
	}
	return ids
}
