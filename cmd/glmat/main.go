// Command glmat evaluates transform matrices.
//
// With -scene, it loads a YAML scene and prints its model, view, projection
// and combined matrices together with the scene points in clip space as
// homogeneous x, y, z, w before perspective division.
// Otherwise it reads console commands line by line from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/seqsense/glmat/config"
	"github.com/seqsense/glmat/console"
	"github.com/seqsense/glmat/mat"
	"github.com/seqsense/glmat/vertex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("glmat: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("glmat", flag.ContinueOnError)
	scene := fs.String("scene", "", "YAML scene file to evaluate")
	maxHistory := fs.Int("history", console.DefaultMaxHistory, "number of undo steps kept in console mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scene != "" {
		s, err := config.LoadFile(*scene)
		if err != nil {
			return err
		}
		return printScene(stdout, s)
	}
	return runConsole(stdin, stdout, console.New(*maxHistory))
}

func printScene(w io.Writer, s *config.Scene) error {
	mvp := s.MVP()
	for _, m := range []struct {
		name string
		m    mat.Mat4
	}{
		{"model", s.Model()},
		{"view", s.Camera.View()},
		{"projection", s.Camera.Projection()},
		{"mvp", mvp},
	} {
		fmt.Fprintf(w, "%s:\n%v\n", m.name, m.m)
	}
	if len(s.Points) == 0 {
		return nil
	}

	r, err := s.Bounds()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bounds: %v %v\n", r.Min, r.Max)

	// x, y, z, w per vertex
	buf := make([]float32, 0, 4*len(s.Points))
	for _, p := range s.Points {
		buf = append(buf, p[0], p[1], p[2], clipW(mvp, mat.Vec3{p[0], p[1], p[2]}))
	}
	if err := vertex.Transform(buf, 4, 0, mvp); err != nil {
		return err
	}
	fmt.Fprintln(w, "points:")
	for i := 0; i < len(buf); i += 4 {
		fmt.Fprintf(w, "%0.3f %0.3f %0.3f %0.3f\n", buf[i], buf[i+1], buf[i+2], buf[i+3])
	}

	min, max, err := vertex.MinMax(buf, 4, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "clip bounds: %v %v\n", min, max)
	return nil
}

// clipW returns the homogeneous w of p transformed by m, which mat.Transform
// does not compute.
func clipW(m mat.Mat4, p mat.Vec3) float32 {
	return m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
}

func runConsole(r io.Reader, w io.Writer, c *console.Console) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		res, err := c.Run(sc.Text())
		if err != nil {
			log.Print(err)
			continue
		}
		if res != "" {
			fmt.Fprintln(w, res)
		}
	}
	return sc.Err()
}
