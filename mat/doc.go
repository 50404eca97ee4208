// Package mat provides 4x4 homogeneous transformation matrices and 3D vectors
// for rendering.
//
// Mat4 is stored row-major, element (row, col) at index row*4+col, as 16
// contiguous float32 values. Points are row vectors multiplied from the left:
//
//	p' = [x y z 1] * M
//
// so the translation occupies elements 12, 13 and 14 and a.Mul(b) applies a
// first and b second. The memory layout is identical to the column-major
// layout expected by OpenGL/WebGL uniformMatrix4fv with transpose=false.
package mat
