package mat

import (
	"github.com/chewxy/math32"
)

const (
	projectionZMinLimit = 1.0 / (1 << 16)
	projectionZMaxLimit = 1 << 16

	defaultFovy   = math32.Pi / 4
	defaultAspect = 1
	defaultZMin   = 0.1
	defaultZMax   = 1000
)

// Projection returns a perspective projection matrix mapping the view
// frustum to clip space.
//
// fovy is clamped to [0, π] and falls back to π/4 when it ends up zero or
// NaN. zMin is floored at 1/65536 (NaN gives 0.1), zMax is capped at 65536
// (zero or NaN gives 1000) and a zero or NaN aspect becomes 1.
// zMin == zMax is not rejected and produces infinite or NaN elements.
func Projection(fovy, aspect, zMin, zMax float32) Mat4 {
	switch {
	case math32.IsNaN(fovy) || fovy <= 0:
		fovy = defaultFovy
	case fovy > math32.Pi:
		fovy = math32.Pi
	}
	switch {
	case math32.IsNaN(zMin):
		zMin = defaultZMin
	case zMin < projectionZMinLimit:
		zMin = projectionZMinLimit
	}
	switch {
	case math32.IsNaN(zMax) || zMax == 0:
		zMax = defaultZMax
	case zMax > projectionZMaxLimit:
		zMax = projectionZMaxLimit
	}
	if math32.IsNaN(aspect) || aspect == 0 {
		aspect = defaultAspect
	}

	halfFovCot := 1 / math32.Tan(fovy/2)
	return Mat4{
		halfFovCot / aspect, 0, 0, 0,
		0, halfFovCot, 0, 0,
		0, 0, (zMax + zMin) / (zMin - zMax), -1,
		0, 0, 2 * zMax * zMin / (zMin - zMax), 0,
	}
}
