package cloud

import (
	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/glmat/mat"
)

// ToPCGoL converts m to the pcgol matrix type. Both share the same element
// layout, so no reordering takes place.
func ToPCGoL(m mat.Mat4) pcmat.Mat4 {
	return pcmat.Mat4(m)
}

func FromPCGoL(m pcmat.Mat4) mat.Mat4 {
	return mat.Mat4(m)
}

func ToPCGoLVec3(v mat.Vec3) pcmat.Vec3 {
	return pcmat.Vec3(v)
}

func FromPCGoLVec3(v pcmat.Vec3) mat.Vec3 {
	return mat.Vec3(v)
}
