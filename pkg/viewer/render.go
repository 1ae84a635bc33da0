package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"
)

var cellColor = color.RGBA{0, 0, 0, 255}

// Render prepares the scene and rasterizes it
func Render(scene *Scene, opts Options) (*image.RGBA, error) {
	frame, err := Prepare(scene, opts)
	if err != nil {
		return nil, err
	}
	return RenderFrame(frame, opts)
}

// RenderFrame rasterizes a prepared frame. The image is drawn at
// opts.Supersample times the frame size and scaled down.
func RenderFrame(frame *Frame, opts Options) (*image.RGBA, error) {
	ss := max(1, opts.Supersample)
	width, height := frame.Width*ss, frame.Height*ss

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if !opts.Transparent && opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	spheres, err := project(frame, width, height)
	if err != nil {
		return nil, err
	}
	light := opts.Light.Normalize()

	var wg sync.WaitGroup
	for _, b := range bands(height, runtime.NumCPU()) {
		wg.Add(1)
		go func(b band) {
			defer wg.Done()
			for _, s := range spheres {
				fillSphere(img, zbuffer, b, s, light)
			}
		}(b)
	}
	wg.Wait()

	if len(frame.Cell) > 0 {
		drawCell(img, zbuffer, frame, opts.CellLineWidth)
	}

	out := img
	if ss > 1 {
		out = image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
		xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	}

	if len(frame.Legend) > 0 {
		if err := drawLegend(out, frame.Legend); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// project converts the frame spheres to screen space
func project(frame *Frame, width, height int) ([]projected, error) {
	w, h := float64(width), float64(height)
	spheres := make([]projected, len(frame.Spheres))
	for i, s := range frame.Spheres {
		tex, err := LookupTexture(textureOrDefault(s.Texture))
		if err != nil {
			return nil, err
		}
		x, y, z := frame.Camera.Project(s.Center, w, h)
		spheres[i] = projected{
			x:       x,
			y:       y,
			z:       z,
			r:       frame.Camera.ProjectRadius(s.Radius, z, h),
			radius:  s.Radius,
			color:   s.Color,
			texture: tex,
		}
	}
	return spheres, nil
}

func textureOrDefault(name string) string {
	if name == "" {
		return DefaultTexture
	}
	return name
}

// bands splits height rows into at most n strips of similar size
func bands(height, n int) []band {
	n = max(1, min(n, height))
	result := make([]band, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, band{y0: i * height / n, y1: (i + 1) * height / n})
	}
	return result
}

func drawCell(img *image.RGBA, zbuffer []float64, frame *Frame, lineWidth float64) {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	for _, seg := range frame.Cell {
		x1, y1, z1 := frame.Camera.Project(seg.From, w, h)
		x2, y2, z2 := frame.Camera.Project(seg.To, w, h)

		brush := int(math.Round(2 * frame.Camera.ProjectRadius(lineWidth, (z1+z2)/2, h)))
		drawLine(img, zbuffer,
			int(math.Round(x1)), int(math.Round(y1)), z1,
			int(math.Round(x2)), int(math.Round(y2)), z2,
			max(1, brush), cellColor)
	}
}
