package viewer

import (
	"math"

	"github.com/philipparndt/colorcif/pkg/geometry"
)

// frameMargin leaves a small border around the structure
const frameMargin = 1.05

// Camera represents a perspective camera looking down -z
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians (vertical)
	Distance float64 // Distance from the camera to the front of the bounding box
}

// NewCamera creates a camera placed distance units in front of the bounding
// box, with a field of view that fits the box into an image of the given
// aspect ratio (width / height).
func NewCamera(bbox geometry.BoundingBox, distance, aspect float64) *Camera {
	center := bbox.Center()
	size := bbox.Size()

	halfH := math.Max(size.Y/2, size.X/2/aspect) * frameMargin

	return &Camera{
		Position: geometry.NewVector3(center.X, center.Y, bbox.Max.Z+distance),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      2 * math.Atan(halfH/distance),
		Distance: distance,
	}
}

// basis returns the camera right, up and forward vectors
func (c *Camera) basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project projects a 3D point to 2D screen coordinates. The third value is
// the depth along the viewing direction; smaller is closer.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	right, up, forward := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// ProjectRadius returns the on-screen radius in pixels of a sphere of the
// given radius at depth z
func (c *Camera) ProjectRadius(radius, z, height float64) float64 {
	if z <= 0.01 {
		z = 0.01
	}
	return radius / (z * math.Tan(c.FOV/2)) * (height / 2)
}

// ViewDirection returns the unit vector from a point towards the camera
// in camera space, which is +z for this camera
func (c *Camera) ViewDirection() geometry.Vector3 {
	return geometry.NewVector3(0, 0, 1)
}
