package mat

// Orthographic returns a parallel projection of the box bounded by
// left/right, bottom/top and the zMin/zMax clip distances.
func Orthographic(left, right, bottom, top, zMin, zMax float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (zMax - zMin), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(zMax + zMin) / (zMax - zMin), 1,
	}
}
