package mat

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

var (
	testMatA = Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	testMatB = Mat4{
		0.5, -1, 2, 0,
		3, 0.25, -2, 1,
		-1, 4, 0, 2,
		2, 1, -3, 0.5,
	}
	testMatC = Mat4{
		2, 0, 1, -1,
		0, 1, 3, 0.5,
		1, -2, 0, 1,
		0.5, 0, 1, 2,
	}
)

func assertMat4Near(t *testing.T, expected, actual Mat4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a := i*4 + j
			diff := actual[a] - expected[a]
			if diff < -tolerance || tolerance < diff {
				t.Errorf("m(%d, %d) expected to be %0.6f, got %0.6f",
					i, j, expected[a], actual[a],
				)
			}
		}
	}
}

func TestFromComponents(t *testing.T) {
	var in []float32
	for i := 0; i < 16; i++ {
		in = append(in, float32(i)*1.5-3)
	}
	m, err := FromComponents(in...)
	require.NoError(t, err)
	for i, v := range in {
		if m[i] != v {
			t.Errorf("[%d] expected %f, got %f", i, v, m[i])
		}
	}

	for _, n := range []int{0, 1, 15, 17} {
		_, err := FromComponents(make([]float32, n)...)
		if !errors.Is(err, ErrArgumentNumber) {
			t.Errorf("FromComponents with %d values is expected to fail with ErrArgumentNumber, got %v", n, err)
		}
	}
}

func TestFromBuffer(t *testing.T) {
	in := testMatA
	buf := in[:]
	m, err := FromBuffer(buf)
	require.NoError(t, err)
	assert.Equal(t, testMatA, m)

	buf[0] = 100
	assert.Equal(t, float32(1), m[0], "matrix must not share storage with the buffer")

	_, err = FromBuffer(make([]float32, 9))
	assert.ErrorIs(t, err, ErrArgumentNumber)
	_, err = FromBuffer(nil)
	assert.ErrorIs(t, err, ErrArgumentNumber)
}

func TestElementwise(t *testing.T) {
	sum := testMatA.Add(testMatB)
	diff := testMatA.Sub(testMatB)
	scaled := testMatA.MulScalar(-2)
	for i := range testMatA {
		if sum[i] != testMatA[i]+testMatB[i] {
			t.Errorf("Add[%d]: expected %f, got %f", i, testMatA[i]+testMatB[i], sum[i])
		}
		if diff[i] != testMatA[i]-testMatB[i] {
			t.Errorf("Sub[%d]: expected %f, got %f", i, testMatA[i]-testMatB[i], diff[i])
		}
		if scaled[i] != -2*testMatA[i] {
			t.Errorf("MulScalar[%d]: expected %f, got %f", i, -2*testMatA[i], scaled[i])
		}
	}
	assert.Equal(t, Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, testMatA, "pure form must not modify the receiver")
}

func TestElementwiseAssign(t *testing.T) {
	m := testMatA
	ret := m.AddAssign(testMatB)
	assert.Same(t, &m, ret)
	assert.Equal(t, testMatA.Add(testMatB), m)

	m = testMatA
	m.SubAssign(testMatB).MulScalarAssign(0.5)
	assert.Equal(t, testMatA.Sub(testMatB).MulScalar(0.5), m)

	m = testMatA
	ret = m.MulAssign(testMatB)
	assert.Same(t, &m, ret)
	assert.Equal(t, testMatA.Mul(testMatB), m)
}

func TestMulIdentity(t *testing.T) {
	for _, m := range []Mat4{testMatA, testMatB, Translate(1, 2, 3), Rotate(0.1, 0.2, 0.3)} {
		assert.Equal(t, m, Identity().Mul(m))
		assert.Equal(t, m, m.Mul(Identity()))
	}
}

func TestMulReference(t *testing.T) {
	// A*B computed by hand for the first row.
	r := testMatA.Mul(testMatB)
	expected := [4]float32{
		1*0.5 + 2*3 + 3*-1 + 4*2,
		1*-1 + 2*0.25 + 3*4 + 4*1,
		1*2 + 2*-2 + 3*0 + 4*-3,
		1*0 + 2*1 + 3*2 + 4*0.5,
	}
	for j, e := range expected {
		if r[j] != e {
			t.Errorf("m(0, %d) expected to be %0.3f, got %0.3f", j, e, r[j])
		}
	}

	// mgl32 multiplies column-major matrices, which is the reverse operand order.
	assertMat4Near(t, FromMgl32(testMatB.Mgl32().Mul4(testMatA.Mgl32())), r)
}

func TestMulAssociative(t *testing.T) {
	a := testMatB
	b := testMatC
	c := Rotate(0.3, -0.2, 1.1).Mul(Translate(1, 2, 3))

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	for i := range left {
		diff := left[i] - right[i]
		if diff < -1e-4 || 1e-4 < diff {
			t.Errorf("[%d] (A*B)*C = %f, A*(B*C) = %f", i, left[i], right[i])
		}
	}
}

func TestMulNotCommutative(t *testing.T) {
	if testMatA.Mul(testMatB) == testMatB.Mul(testMatA) {
		t.Error("A*B and B*A are expected to differ")
	}
	if RotateX(0.5).Mul(Translate(1, 2, 3)) == Translate(1, 2, 3).Mul(RotateX(0.5)) {
		t.Error("rotation and translation are expected not to commute")
	}
}

func TestMulAffine(t *testing.T) {
	m0 := Translate(0.1, 0.2, 0.3)
	m1 := Scale(1.1, 1.2, 1.3)
	m2 := RotateAxis(Vec3{1, 0, 0}, 0.1)
	m3 := RotateAxis(Vec3{0, 1, 0}, 0.1)
	m4 := RotateAxis(Vec3{0, 0, 1}, 0.1)

	r := m0.MulAffine(m1).MulAffine(m2).MulAffine(m3).MulAffine(m4)
	rNaive := m0.Mul(m1).Mul(m2).Mul(m3).Mul(m4)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a := i*4 + j
			diff := r[a] - rNaive[a]
			if diff < -0.01 || 0.01 < diff {
				t.Errorf("m(%d, %d) expected to be %0.3f, got %0.3f",
					i, j, rNaive[a], r[a],
				)
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	tr := testMatA.Transpose()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if tr[4*j+i] != testMatA[4*i+j] {
				t.Errorf("m(%d, %d) expected to be %0.3f, got %0.3f", j, i, testMatA[4*i+j], tr[4*j+i])
			}
		}
	}
	assert.Equal(t, testMatA, tr.Transpose())
}

func TestApproxEqual(t *testing.T) {
	m := testMatA
	m[5] += 1e-6
	assert.True(t, m.ApproxEqual(testMatA, tolerance))
	assert.False(t, m.Equal(testMatA))

	m[5] += 1
	assert.False(t, m.ApproxEqual(testMatA, tolerance))

	var nan Mat4
	nan[0] = math32.NaN()
	assert.False(t, nan.ApproxEqual(Mat4{}, tolerance), "NaN must never be approximately equal")
}

func TestString(t *testing.T) {
	expected := "1.000 0.000 0.000 0.000\n" +
		"0.000 1.000 0.000 0.000\n" +
		"0.000 0.000 1.000 0.000\n" +
		"1.500 -2.000 3.250 1.000"
	assert.Equal(t, expected, Translate(1.5, -2, 3.25).String())
}
