package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/colorcif/pkg/geometry"
)

// projected is a sphere in screen space
type projected struct {
	x, y, z float64 // screen center and camera depth
	r       float64 // screen radius in pixels
	radius  float64 // world radius
	color   colorful.Color
	texture Texture
}

// band is a horizontal strip of rows owned by one worker
type band struct {
	y0, y1 int // [y0, y1)
}

// fillSphere shades the part of a sphere that falls inside the band, with
// depth testing against zbuffer
func fillSphere(img *image.RGBA, zbuffer []float64, b band, s projected, light geometry.Vector3) {
	bounds := img.Bounds()
	width := bounds.Max.X

	yStart := max(b.y0, int(math.Floor(s.y-s.r)))
	yEnd := min(b.y1-1, int(math.Ceil(s.y+s.r)))
	xStart := max(0, int(math.Floor(s.x-s.r)))
	xEnd := min(width-1, int(math.Ceil(s.x+s.r)))

	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - s.y) / s.r
		for x := xStart; x <= xEnd; x++ {
			dx := (float64(x) + 0.5 - s.x) / s.r
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}

			nz := math.Sqrt(1 - d2)
			z := s.z - nz*s.radius

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if z >= zbuffer[idx] {
				continue
			}
			zbuffer[idx] = z

			normal := geometry.NewVector3(dx, -dy, nz)
			img.SetRGBA(x, y, shade(s.color, s.texture, normal, light))
		}
	}
}

// shade applies Phong lighting; normal and light are unit vectors in
// camera space and the viewer looks down -z
func shade(c colorful.Color, tex Texture, normal, light geometry.Vector3) color.RGBA {
	diffuse := math.Max(normal.Dot(light), 0)

	var specular float64
	if diffuse > 0 {
		reflect := normal.Mul(2 * normal.Dot(light)).Sub(light)
		specular = math.Pow(math.Max(reflect.Z, 0), tex.Shininess)
	}

	intensity := tex.Ambient + tex.Diffuse*diffuse
	highlight := tex.Specular * specular
	return color.RGBA{
		R: channel(c.R*intensity + highlight),
		G: channel(c.G*intensity + highlight),
		B: channel(c.B*intensity + highlight),
		A: 255,
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// drawLine draws a line on an image using Bresenham's algorithm. Depth is
// interpolated between the end points; pixels hidden behind spheres are
// skipped. The brush is a square of the given width.
func drawLine(img *image.RGBA, zbuffer []float64, x1, y1 int, z1 float64, x2, y2 int, z2 float64, brush int, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy, 1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy
	half := brush / 2

	for step := 0; ; step++ {
		z := z1 + (z2-z1)*float64(step)/float64(steps)

		for by := y1 - half; by < y1-half+brush; by++ {
			for bx := x1 - half; bx < x1-half+brush; bx++ {
				// Check bounds
				if bx < 0 || bx >= bounds.Max.X || by < 0 || by >= bounds.Max.Y {
					continue
				}
				idx := by*width + bx
				if z <= zbuffer[idx] {
					zbuffer[idx] = z
					img.SetRGBA(bx, by, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
