// Package viewer renders atoms as shaded spheres into an image.
//
// A Scene is prepared into a Frame: atoms and cell corners are rotated,
// centered and viewed through a perspective Camera. The Frame is shared by
// the built-in rasterizer (Render) and the POV-Ray scene writer.
package viewer

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/colorcif/pkg/geometry"
)

// ErrEmptyScene is returned when there is nothing to render
var ErrEmptyScene = errors.New("scene has no atoms")

// Sphere is one atom of the scene
type Sphere struct {
	Center  geometry.Vector3
	Radius  float64
	Color   colorful.Color
	Texture string
}

// LegendEntry labels one color in the image legend
type LegendEntry struct {
	Label string
	Color colorful.Color
}

// Scene is what gets rendered
type Scene struct {
	Spheres []Sphere
	Cell    *geometry.Lattice // optional
	Legend  []LegendEntry
}

// Options controls how a scene is rendered
type Options struct {
	Rotation      string           // e.g. "10x,-20y,0z"
	Width         int              // canvas width in pixels; height follows the aspect ratio
	CameraDist    float64          // distance from the camera to the front atom
	Light         geometry.Vector3 // area light position in camera space
	LightSize     [2]float64       // area light width and height
	LightLamps    [2]int           // lamps along width and height
	Background    color.Color
	Transparent   bool
	ShowCell      bool
	CellLineWidth float64 // radius of the cell edge cylinders
	Supersample   int     // built-in renderer only
	Legend        bool
}

// DefaultOptions returns the default render options
func DefaultOptions() Options {
	return Options{
		Rotation:      "0x,0y,0z",
		Width:         400,
		CameraDist:    50,
		Light:         geometry.NewVector3(2, 3, 40),
		LightSize:     [2]float64{0.7, 0.7},
		LightLamps:    [2]int{3, 3},
		Background:    color.White,
		CellLineWidth: 0.05,
		Supersample:   2,
	}
}

// Validate checks the options for values that cannot be rendered
func (o Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", o.Width)
	}
	if o.CameraDist <= 0 {
		return fmt.Errorf("camera distance must be positive, got %g", o.CameraDist)
	}
	if o.Supersample < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", o.Supersample)
	}
	if _, err := geometry.ParseRotation(o.Rotation); err != nil {
		return err
	}
	return nil
}

// Segment is a unit cell edge in view space
type Segment struct {
	From, To geometry.Vector3
}

// Frame is a scene rotated into view space, with the camera fitted to it
type Frame struct {
	Spheres []Sphere  // centers rotated and centered on the origin
	Cell    []Segment // empty unless the cell is shown
	Legend  []LegendEntry
	Bounds  geometry.BoundingBox
	Camera  *Camera
	Width   int
	Height  int
}

// Prepare rotates the scene, centers it and fits the camera
func Prepare(scene *Scene, opts Options) (*Frame, error) {
	if len(scene.Spheres) == 0 {
		return nil, ErrEmptyScene
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rot, err := geometry.ParseRotation(opts.Rotation)
	if err != nil {
		return nil, err
	}

	bbox := geometry.NewBoundingBox()
	spheres := make([]Sphere, len(scene.Spheres))
	for i, s := range scene.Spheres {
		s.Center = rot.Apply(s.Center)
		bbox.ExtendSphere(s.Center, s.Radius)
		spheres[i] = s
	}

	var corners [8]geometry.Vector3
	showCell := opts.ShowCell && scene.Cell != nil
	if showCell {
		corners = scene.Cell.Corners()
		for i := range corners {
			corners[i] = rot.Apply(corners[i])
			bbox.ExtendSphere(corners[i], opts.CellLineWidth)
		}
	}

	center := bbox.Center()
	for i := range spheres {
		spheres[i].Center = spheres[i].Center.Sub(center)
	}
	bbox.Min = bbox.Min.Sub(center)
	bbox.Max = bbox.Max.Sub(center)

	frame := &Frame{
		Spheres: spheres,
		Bounds:  bbox,
		Width:   opts.Width,
	}
	if opts.Legend {
		frame.Legend = scene.Legend
	}

	if showCell {
		for _, edge := range geometry.Edges() {
			frame.Cell = append(frame.Cell, Segment{
				From: corners[edge[0]].Sub(center),
				To:   corners[edge[1]].Sub(center),
			})
		}
	}

	size := bbox.Size()
	frame.Height = max(1, int(float64(opts.Width)*size.Y/size.X+0.5))
	frame.Camera = NewCamera(bbox, opts.CameraDist, float64(frame.Width)/float64(frame.Height))

	return frame, nil
}
