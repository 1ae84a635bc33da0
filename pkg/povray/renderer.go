package povray

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/colorcif/pkg/viewer"
)

// ErrNotInstalled is returned when the povray executable cannot be found
var ErrNotInstalled = errors.New("povray not found in PATH. Please install POV-Ray from https://www.povray.org/")

// Renderer writes POV-Ray scenes and renders them with povray
type Renderer struct {
	workDir    string
	executable string
}

// Option configures a Renderer
type Option func(*Renderer)

// WithExecutable sets the povray executable name or path
func WithExecutable(executable string) Option {
	return func(r *Renderer) {
		r.executable = executable
	}
}

// NewRenderer creates a new POV-Ray renderer
func NewRenderer(workDir string, opts ...Option) *Renderer {
	r := &Renderer{
		workDir:    workDir,
		executable: "povray",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Files are the paths produced for one scene
type Files struct {
	Scene string // .pov
	INI   string // .ini
	Image string // .png written by povray
}

// FilesFor derives the scene, ini and png paths from an output path. The
// extension of povFile is replaced, so "out.png" and "out.pov" give the
// same files and the scene never shares a path with the image.
func FilesFor(povFile string) Files {
	base := strings.TrimSuffix(povFile, filepath.Ext(povFile))
	return Files{
		Scene: base + ".pov",
		INI:   base + ".ini",
		Image: base + ".png",
	}
}

// Write prepares the scene and writes the .pov and .ini files
func (r *Renderer) Write(scene *viewer.Scene, opts viewer.Options, povFile string) (Files, error) {
	files := FilesFor(r.abs(povFile))

	frame, err := viewer.Prepare(scene, opts)
	if err != nil {
		return files, err
	}

	if err := writeFile(files.Scene, func(f *os.File) error {
		return WriteScene(f, frame, opts)
	}); err != nil {
		return files, err
	}

	if err := writeFile(files.INI, func(f *os.File) error {
		return WriteINI(f, filepath.Base(files.Scene), filepath.Base(files.Image), frame, opts)
	}); err != nil {
		return files, err
	}

	return files, nil
}

// Render writes the scene files and runs povray on them
func (r *Renderer) Render(ctx context.Context, scene *viewer.Scene, opts viewer.Options, povFile string) (Files, error) {
	files, err := r.Write(scene, opts, povFile)
	if err != nil {
		return files, err
	}
	return files, r.Run(ctx, files.INI)
}

// Run runs povray on an ini file, in the directory of that file
func (r *Renderer) Run(ctx context.Context, iniFile string) error {
	// Check if POV-Ray is installed
	path, err := exec.LookPath(r.executable)
	if err != nil {
		return ErrNotInstalled
	}

	iniFile = r.abs(iniFile)
	cmd := exec.CommandContext(ctx, path, filepath.Base(iniFile))
	cmd.Dir = filepath.Dir(iniFile)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	// If error occurred, display output
	if err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v\n", iniFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("stderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("stdout: ")
			errMsg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", errMsg.String())
	}

	return nil
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) || r.workDir == "" {
		return path
	}
	return filepath.Join(r.workDir, path)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
