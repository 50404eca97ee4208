// Package config loads camera and model transforms from YAML scene
// descriptions and turns them into matrices.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/pc"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/glmat/cloud"
	"github.com/seqsense/glmat/mat"
)

var (
	ErrInvalidVector = errors.New("vector must have 3 elements")
	ErrInvalidStep   = errors.New("step must have exactly one operation")
)

type Scene struct {
	Camera Camera      `yaml:"camera"`
	Steps  []Step      `yaml:"model"`
	Points [][]float32 `yaml:"points"`
}

type Camera struct {
	Eye    []float32 `yaml:"eye"`
	Target []float32 `yaml:"target"`
	Up     []float32 `yaml:"up"`
	Fovy   *float32  `yaml:"fovy"`
	Aspect *float32  `yaml:"aspect"`
	ZMin   *float32  `yaml:"z_min"`
	ZMax   *float32  `yaml:"z_max"`
}

// Step is a single model transform. Exactly one field must be set.
type Step struct {
	Translate []float32 `yaml:"translate"`
	Rotate    []float32 `yaml:"rotate"`
	RotateX   *float32  `yaml:"rotate_x"`
	RotateY   *float32  `yaml:"rotate_y"`
	RotateZ   *float32  `yaml:"rotate_z"`
	Scale     []float32 `yaml:"scale"`
}

var defaultUp = mat.Vec3{0, 1, 0}

// Load reads a scene from r and validates it.
func Load(r io.Reader) (*Scene, error) {
	s := &Scene{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) validate() error {
	vecs := []struct {
		name string
		v    []float32
	}{
		{"camera.eye", s.Camera.Eye},
		{"camera.target", s.Camera.Target},
		{"camera.up", s.Camera.Up},
	}
	for _, v := range vecs {
		if len(v.v) != 0 && len(v.v) != 3 {
			return fmt.Errorf("%s: %w", v.name, ErrInvalidVector)
		}
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("model[%d]: %w", i, err)
		}
	}
	for i, p := range s.Points {
		if len(p) != 3 {
			return fmt.Errorf("points[%d]: %w", i, ErrInvalidVector)
		}
	}
	return nil
}

func (st Step) validate() error {
	n := 0
	for _, v := range [][]float32{st.Translate, st.Rotate, st.Scale} {
		if v == nil {
			continue
		}
		if len(v) != 3 {
			return ErrInvalidVector
		}
		n++
	}
	for _, a := range []*float32{st.RotateX, st.RotateY, st.RotateZ} {
		if a != nil {
			n++
		}
	}
	if n != 1 {
		return ErrInvalidStep
	}
	return nil
}

// Matrix returns the transform of the step.
// The step must have been validated.
func (st Step) Matrix() mat.Mat4 {
	switch {
	case st.Translate != nil:
		return mat.Translate(st.Translate[0], st.Translate[1], st.Translate[2])
	case st.Rotate != nil:
		return mat.Rotate(st.Rotate[0], st.Rotate[1], st.Rotate[2])
	case st.RotateX != nil:
		return mat.RotateX(*st.RotateX)
	case st.RotateY != nil:
		return mat.RotateY(*st.RotateY)
	case st.RotateZ != nil:
		return mat.RotateZ(*st.RotateZ)
	case st.Scale != nil:
		return mat.Scale(st.Scale[0], st.Scale[1], st.Scale[2])
	}
	return mat.Identity()
}

func vec3(v []float32, def mat.Vec3) mat.Vec3 {
	if len(v) != 3 {
		return def
	}
	return mat.Vec3{v[0], v[1], v[2]}
}

func (c Camera) View() mat.Mat4 {
	return mat.LookAt(
		vec3(c.Eye, mat.Vec3{}),
		vec3(c.Target, mat.Vec3{}),
		vec3(c.Up, defaultUp),
	)
}

// orNaN returns NaN for an omitted value so that mat.Projection applies
// its default.
func orNaN(v *float32) float32 {
	if v == nil {
		return math32.NaN()
	}
	return *v
}

// Projection returns the perspective projection of the camera.
// Omitted fields take the defaults of mat.Projection for NaN input.
func (c Camera) Projection() mat.Mat4 {
	return mat.Projection(orNaN(c.Fovy), orNaN(c.Aspect), orNaN(c.ZMin), orNaN(c.ZMax))
}

// Model composes the model steps in order, so the first step is applied
// to a point first.
func (s *Scene) Model() mat.Mat4 {
	m := mat.Identity()
	for _, st := range s.Steps {
		m.MulAssign(st.Matrix())
	}
	return m
}

func (s *Scene) MVP() mat.Mat4 {
	return s.Model().Mul(s.Camera.View()).Mul(s.Camera.Projection())
}

// PointAccessor returns the scene points as a pcgol random accessor.
func (s *Scene) PointAccessor() pc.Vec3RandomAccessor {
	ps := make(pc.Vec3Slice, 0, len(s.Points))
	for _, p := range s.Points {
		ps = append(ps, cloud.ToPCGoLVec3(vec3(p, mat.Vec3{})))
	}
	return ps
}

// Bounds returns the bounding box of the scene points in world coordinates.
func (s *Scene) Bounds() (cloud.Rect, error) {
	return cloud.Bounds(s.PointAccessor(), s.Model())
}
