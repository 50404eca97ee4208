package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/glmat/mat"
)

func TestTransform(t *testing.T) {
	// r, g, b, x, y, z
	buf := []float32{
		0.1, 0.2, 0.3, 1, 2, 3,
		0.4, 0.5, 0.6, -1, 0, 2,
	}
	require.NoError(t, Transform(buf, 6, 3, mat.Translate(1, 1, -1)))
	assert.Equal(t, []float32{
		0.1, 0.2, 0.3, 2, 3, 2,
		0.4, 0.5, 0.6, 0, 1, 1,
	}, buf)

	assert.ErrorIs(t, Transform(buf, 6, 4, mat.Identity()), ErrInvalidStride)
}

func TestMinMax(t *testing.T) {
	buf := []float32{
		10.1, -20.2, 3.3,
		1.1, 2.2, 4.3,
		15.1, 21.2, 0.3,
	}

	expectedMin := mat.Vec3{1.1, -20.2, 0.3}
	expectedMax := mat.Vec3{15.1, 21.2, 4.3}

	min, max, err := MinMax(buf, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !expectedMin.Equal(min) {
		t.Errorf("Expected min: %v, got: %v", expectedMin, min)
	}
	if !expectedMax.Equal(max) {
		t.Errorf("Expected max: %v, got: %v", expectedMax, max)
	}

	_, _, err = MinMax(nil, 3, 0)
	assert.ErrorIs(t, err, ErrNoVertex)
}
