// Package console implements a line-oriented matrix calculator.
//
// The console holds a current matrix, initially the identity. Matrix commands
// post-multiply it, so the transform of each command is applied to a point
// after the transforms of the preceding ones.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/seqsense/glmat/mat"
)

// DefaultMaxHistory is the number of undo steps kept by New when a negative
// size is given.
const DefaultMaxHistory = 32

var (
	ErrArgumentNumber = mat.ErrArgumentNumber
	ErrInvalidCommand = errors.New("invalid command")
	ErrNoHistory      = errors.New("no history")
)

// Console is not safe for concurrent use.
type Console struct {
	m       mat.Mat4
	history *history
}

func New(maxHistory int) *Console {
	if maxHistory < 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Console{
		m:       mat.Identity(),
		history: newHistory(maxHistory),
	}
}

func (c *Console) Matrix() mat.Mat4 {
	return c.m
}

func (c *Console) MaxHistory() int {
	return c.history.MaxHistory()
}

func (c *Console) SetMaxHistory(n int) {
	c.history.SetMaxHistory(n)
}

func (c *Console) set(m mat.Mat4) {
	c.history.push(c.m)
	c.m = m
}

func (c *Console) apply(m mat.Mat4) {
	c.set(c.m.Mul(m))
}

func matrixRows(m mat.Mat4) [][]float32 {
	return [][]float32{m[0:4], m[4:8], m[8:12], m[12:16]}
}

func vec3Command(fn func(x, y, z float32) mat.Mat4) func(*Console, []float32) ([][]float32, error) {
	return func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, ErrArgumentNumber
		}
		c.apply(fn(args[0], args[1], args[2]))
		return matrixRows(c.m), nil
	}
}

func angleCommand(fn func(ang float32) mat.Mat4) func(*Console, []float32) ([][]float32, error) {
	return func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 1 {
			return nil, ErrArgumentNumber
		}
		c.apply(fn(args[0]))
		return matrixRows(c.m), nil
	}
}

var consoleCommands = map[string]func(c *Console, args []float32) ([][]float32, error){
	"identity": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, ErrArgumentNumber
		}
		c.set(mat.Identity())
		return matrixRows(c.m), nil
	},
	"load": func(c *Console, args []float32) ([][]float32, error) {
		m, err := mat.FromComponents(args...)
		if err != nil {
			return nil, err
		}
		c.set(m)
		return matrixRows(c.m), nil
	},
	"mul": func(c *Console, args []float32) ([][]float32, error) {
		m, err := mat.FromComponents(args...)
		if err != nil {
			return nil, err
		}
		c.apply(m)
		return matrixRows(c.m), nil
	},
	"rotate_x":  angleCommand(mat.RotateX),
	"rotate_y":  angleCommand(mat.RotateY),
	"rotate_z":  angleCommand(mat.RotateZ),
	"rotate":    vec3Command(mat.Rotate),
	"translate": vec3Command(mat.Translate),
	"scale": func(c *Console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 1:
			c.set(c.m.MulScalar(args[0]))
		case 3:
			c.apply(mat.Scale(args[0], args[1], args[2]))
		default:
			return nil, ErrArgumentNumber
		}
		return matrixRows(c.m), nil
	},
	"rotate_axis": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 4 {
			return nil, ErrArgumentNumber
		}
		c.apply(mat.RotateAxis(mat.Vec3{args[0], args[1], args[2]}, args[3]))
		return matrixRows(c.m), nil
	},
	"projection": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 4 {
			return nil, ErrArgumentNumber
		}
		c.apply(mat.Projection(args[0], args[1], args[2], args[3]))
		return matrixRows(c.m), nil
	},
	"orthographic": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 6 {
			return nil, ErrArgumentNumber
		}
		c.apply(mat.Orthographic(args[0], args[1], args[2], args[3], args[4], args[5]))
		return matrixRows(c.m), nil
	},
	"look_at": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 9 {
			return nil, ErrArgumentNumber
		}
		c.apply(mat.LookAt(
			mat.Vec3{args[0], args[1], args[2]},
			mat.Vec3{args[3], args[4], args[5]},
			mat.Vec3{args[6], args[7], args[8]},
		))
		return matrixRows(c.m), nil
	},
	"transpose": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, ErrArgumentNumber
		}
		c.set(c.m.Transpose())
		return matrixRows(c.m), nil
	},
	"transform": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, ErrArgumentNumber
		}
		p := mat.TransformPoint(mat.Vec3{args[0], args[1], args[2]}, c.m)
		return [][]float32{p[:]}, nil
	},
	"print": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, ErrArgumentNumber
		}
		return matrixRows(c.m), nil
	},
	"undo": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, ErrArgumentNumber
		}
		m, ok := c.history.pop()
		if !ok {
			return nil, ErrNoHistory
		}
		c.m = m
		return matrixRows(c.m), nil
	},
}

// Commands returns the sorted list of command names.
func Commands() []string {
	names := make([]string, 0, len(consoleCommands))
	for name := range consoleCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run parses and executes a single command line and returns its output.
// Empty lines and lines starting with '#' are ignored.
func (c *Console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", fmt.Errorf("%s: %w", args[0], ErrInvalidCommand)
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", fmt.Errorf("%s: %w", args[0], err)
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c, argsFloat)
	if err != nil {
		return "", fmt.Errorf("%s: %w", args[0], err)
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			if v == 0 {
				// Avoid printing negative zero.
				v = 0
			}
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
