package renderer

import (
	"errors"
	"fmt"

	"hexisland/core"
	"hexisland/core/window"
	"hexisland/internal/opengl"
	"hexisland/math"
	"hexisland/scene"
)

// ErrNoCamera is returned by Render when no scene or camera is set.
var ErrNoCamera = errors.New("no scene or camera")

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *window.Window
	Scene  *scene.Scene

	// one persistent point mesh per emitter, refilled every frame
	emitters map[*scene.ParticleEmitter]*scene.Mesh

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
}

func NewRenderEngine(win *window.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	glRenderer.SetViewport(win.Width, win.Height)

	fmt.Println("Render engine initialized (OpenGL)")
	return &RenderEngine{
		gl:       glRenderer,
		window:   win,
		emitters: make(map[*scene.ParticleEmitter]*scene.Mesh),
	}, nil
}

func (re *RenderEngine) SetScene(s *scene.Scene) {
	re.Scene = s
	if s != nil && s.Camera != nil {
		s.Camera.UpdateAspectRatio(float32(re.window.Width), float32(re.window.Height))
	}
}

// Render clears the frame and draws every visible node: opaque meshes first,
// then translucent ones back to front.
func (re *RenderEngine) Render() error {
	if re.Scene == nil || re.Scene.Camera == nil {
		return ErrNoCamera
	}
	cam := re.Scene.Camera

	re.gl.BeginFrame(re.Scene.SkyColor, re.Scene.Light, re.Scene.Ambient)

	vp := cam.ViewProjectionMatrix()
	opaque, translucent := scene.DrawOrder(re.Scene.VisibleNodes(), cam.Position())

	objects, vertices, triangles := 0, 0, 0
	for _, pass := range [][]*scene.Node{opaque, translucent} {
		for _, node := range pass {
			model := node.WorldMatrix()
			re.gl.DrawMesh(node.Mesh, model.Mul(vp), model)

			objects++
			vertices += len(node.Mesh.Vertices)
			triangles += node.Mesh.TriangleCount()
		}
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles
	return nil
}

// DrawEmitter renders an emitter's live particles as GL points. Call between
// Render and Present so the particles blend over the scene.
func (re *RenderEngine) DrawEmitter(emitter *scene.ParticleEmitter) {
	if re.Scene == nil || re.Scene.Camera == nil || emitter == nil {
		return
	}
	mesh, ok := re.emitters[emitter]
	if !ok {
		mesh = scene.NewMesh("Particles")
		mesh.DrawMode = scene.DrawPoints
		mesh.Material = &scene.Material{
			Name:     "Particles",
			Albedo:   core.ColorWhite,
			Opacity:  1,
			Additive: emitter.BlendMode == scene.BlendAdditive,
			Unlit:    true,
		}
		re.emitters[emitter] = mesh
	}
	mesh.Vertices = emitter.PointMesh().Vertices
	re.gl.UpdateMesh(mesh)

	if len(mesh.Vertices) == 0 {
		return
	}
	re.gl.DrawMesh(mesh, re.Scene.Camera.ViewProjectionMatrix(), math.Mat4Identity())
}

// ReleaseEmitter frees the point mesh kept for emitter.
func (re *RenderEngine) ReleaseEmitter(emitter *scene.ParticleEmitter) {
	if mesh, ok := re.emitters[emitter]; ok {
		re.gl.ReleaseMesh(mesh)
		delete(re.emitters, emitter)
	}
}

// Present swaps buffers. Call after Render and any additional draw passes.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height int) {
	re.gl.SetViewport(width, height)
	if re.Scene != nil && re.Scene.Camera != nil {
		re.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

// Release frees the GPU buffers of every mesh under node. Call before
// dropping a subtree so regenerated geometry does not leak.
func (re *RenderEngine) Release(node *scene.Node) {
	if node == nil {
		return
	}
	node.Traverse(func(n *scene.Node) {
		if n.Mesh != nil {
			re.gl.ReleaseMesh(n.Mesh)
		}
	})
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns the objects, vertices and triangles drawn by the last
// Render, plus the number of meshes resident on the GPU.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles, resident int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles, re.gl.MeshCount()
}
