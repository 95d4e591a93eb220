// Package window wraps a GLFW window with an OpenGL 4.1 core context.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hexisland/core"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	scrollY float64
}

// New opens a window with an OpenGL 4.1 core profile context made current
// on the calling thread.
func New(config core.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	if config.Samples > 0 {
		glfw.WindowHint(glfw.Samples, config.Samples)
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	width, height := handle.GetFramebufferSize()
	window := &Window{
		Handle: handle,
		Width:  width,
		Height: height,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})
	handle.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		window.scrollY += yoff
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// TakeScroll returns the vertical scroll accumulated since the last call.
func (w *Window) TakeScroll() float64 {
	s := w.scrollY
	w.scrollY = 0
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeyEscape = int(glfw.KeyEscape)

	MouseLeft = int(glfw.MouseButtonLeft)
)
