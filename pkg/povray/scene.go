// Package povray writes POV-Ray scenes for prepared frames and runs the
// povray executable on them.
package povray

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/philipparndt/colorcif/pkg/geometry"
	"github.com/philipparndt/colorcif/pkg/viewer"
)

// WriteScene writes the POV-Ray scene description of frame
func WriteScene(w io.Writer, frame *viewer.Frame, opts viewer.Options) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) {
		fmt.Fprintf(bw, format, args...)
	}

	p("#include \"colors.inc\"\n")
	p("#include \"finish.inc\"\n\n")
	p("global_settings {assumed_gamma 1 max_trace_level 6}\n")
	p("background {%s}\n", background(opts))

	cam := frame.Camera
	up := 2 * math.Tan(cam.FOV/2)
	right := up * float64(frame.Width) / float64(frame.Height)
	p("camera {perspective\n")
	p("  right %.2f*x up %.2f*y\n", -right, up)
	p("  direction 1.00*z\n")
	p("  location <%s> look_at <%s>}\n", vec(cam.Position), vec(cam.Target))

	p("light_source {<%s> color White\n", vec(opts.Light))
	p("  area_light <%.2f, 0, 0>, <0, %.2f, 0>, %d, %d\n",
		opts.LightSize[0], opts.LightSize[1], opts.LightLamps[0], opts.LightLamps[1])
	p("  adaptive 1 jitter}\n\n")

	used := make(map[string]bool)
	for _, s := range frame.Spheres {
		used[textureName(s.Texture)] = true
	}
	for name := range used {
		if _, err := viewer.LookupTexture(name); err != nil {
			return err
		}
	}
	for _, name := range viewer.TextureNames() {
		if used[name] {
			tex, _ := viewer.LookupTexture(name)
			p("#declare %s = finish {%s}\n", name, tex.Finish)
		}
	}

	p("#declare Rcell = %.3f;\n\n", opts.CellLineWidth)
	p("#macro atom(LOC, R, COL, TRANS, FIN)\n")
	p("  sphere{LOC, R texture{pigment{color COL transmit TRANS} finish{FIN}}}\n")
	p("#end\n\n")

	if len(frame.Cell) > 0 {
		p("union {\n")
		for _, seg := range frame.Cell {
			p("  cylinder {<%s>, <%s>, Rcell}\n", vec(seg.From), vec(seg.To))
		}
		p("  pigment {Black}\n}\n")
	}

	for i, s := range frame.Spheres {
		c := s.Color.Clamped()
		p("atom(<%s>, %.2f, color rgb <%.2f, %.2f, %.2f>, 0.0, %s) // #%d\n",
			vec(s.Center), s.Radius, c.R, c.G, c.B, textureName(s.Texture), i)
	}

	return bw.Flush()
}

// WriteINI writes the POV-Ray ini file that renders povFile into pngFile
func WriteINI(w io.Writer, povFile, pngFile string, frame *viewer.Frame, opts viewer.Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Input_File_Name=%s\n", povFile)
	fmt.Fprintf(bw, "Output_File_Name=%s\n", pngFile)
	fmt.Fprintf(bw, "Output_to_File=True\n")
	fmt.Fprintf(bw, "Output_File_Type=N\n")
	fmt.Fprintf(bw, "Output_Alpha=%s\n", povBool(opts.Transparent))
	fmt.Fprintf(bw, "Width=%d\n", frame.Width)
	fmt.Fprintf(bw, "Height=%d\n", frame.Height)
	fmt.Fprintf(bw, "Antialias=True\n")
	fmt.Fprintf(bw, "Antialias_Threshold=0.1\n")
	fmt.Fprintf(bw, "Display=False\n")
	fmt.Fprintf(bw, "Pause_When_Done=False\n")
	fmt.Fprintf(bw, "Verbose=False\n")
	return bw.Flush()
}

func background(opts viewer.Options) string {
	r, g, b := rgb(opts.Background)
	if opts.Transparent {
		return fmt.Sprintf("color rgb <%.2f, %.2f, %.2f> transmit 1.0", r, g, b)
	}
	return fmt.Sprintf("color rgb <%.2f, %.2f, %.2f>", r, g, b)
}

func rgb(c color.Color) (float64, float64, float64) {
	if c == nil {
		return 1, 1, 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255
}

func vec(v geometry.Vector3) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", v.X, v.Y, v.Z)
}

func textureName(name string) string {
	if name == "" {
		return viewer.DefaultTexture
	}
	return name
}

func povBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
