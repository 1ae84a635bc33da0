// Package preview shows rendered structure images in a window.
package preview

import (
	"image"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Window displays one image with a status line below it
type Window struct {
	app    fyne.App
	window fyne.Window
	image  *canvas.Image
	status *widget.Label
}

// New creates the preview window showing img; it is shown by ShowAndRun
func New(title string, img image.Image, status string) *Window {
	a := fyneapp.New()
	w := a.NewWindow(title)

	view := canvas.NewImageFromImage(img)
	view.FillMode = canvas.ImageFillContain
	view.ScaleMode = canvas.ImageScaleSmooth

	label := widget.NewLabel(status)

	w.SetContent(container.NewBorder(nil, label, nil, nil, view))

	return &Window{
		app:    a,
		window: w,
		image:  view,
		status: label,
	}
}

// SetImage replaces the displayed image. It may be called from any
// goroutine once the event loop runs.
func (w *Window) SetImage(img image.Image, status string) {
	fyne.Do(func() {
		w.image.Image = img
		w.image.Refresh()
		w.status.SetText(status)
	})
}

// SetStatus replaces the status line. It may be called from any goroutine.
func (w *Window) SetStatus(status string) {
	fyne.Do(func() {
		w.status.SetText(status)
	})
}

// OnClosed registers a function called when the window is closed
func (w *Window) OnClosed(fn func()) {
	w.window.SetOnClosed(fn)
}

// ShowAndRun shows the window sized to the image and runs the event loop
func (w *Window) ShowAndRun() {
	size := fyne.NewSize(600, 600)
	if w.image.Image != nil {
		b := w.image.Image.Bounds()
		size = fyne.NewSize(float32(b.Dx()), float32(b.Dy())+40)
	}
	w.window.Resize(size)
	w.window.ShowAndRun()
}
