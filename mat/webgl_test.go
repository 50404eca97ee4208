package mat

import (
	"testing"

	webgl "github.com/seqsense/webgl-go"
)

func TestFloats(t *testing.T) {
	var u webgl.Mat4 = Translate(1, 2, 3)
	f := u.Floats()
	for i, expected := range []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1} {
		if f[i] != expected {
			t.Errorf("[%d] expected %f, got %f", i, expected, f[i])
		}
	}

	var v webgl.Vec3 = Vec3{4, 5, 6}
	if f := v.Floats(); f != [3]float32{4, 5, 6} {
		t.Errorf("Expected [4 5 6], got %v", f)
	}
}
