package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hexisland/core"
	"hexisland/math"
	"hexisland/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	VertexCount int32
	IndexCount  int32
	HasIndices  bool
	Dynamic     bool
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	program uint32

	// Vertex transform uniforms
	mvpLoc   int32
	modelLoc int32

	// Lighting uniforms
	lightPosLoc       int32
	lightColorLoc     int32
	lightIntensityLoc int32
	ambientColorLoc   int32

	// Material uniforms
	albedoLoc     int32
	opacityLoc    int32
	flatLoc       int32
	unlitLoc      int32
	isPointsLoc   int32
	pointScaleLoc int32

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("main shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	loc := func(name string) int32 {
		return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	}

	return &Renderer{
		program:           prog,
		mvpLoc:            loc("mvp"),
		modelLoc:          loc("model"),
		lightPosLoc:       loc("lightPos"),
		lightColorLoc:     loc("lightColor"),
		lightIntensityLoc: loc("lightIntensity"),
		ambientColorLoc:   loc("ambientColor"),
		albedoLoc:         loc("matAlbedo"),
		opacityLoc:        loc("opacity"),
		flatLoc:           loc("flatShading"),
		unlitLoc:          loc("unlit"),
		isPointsLoc:       loc("isPoints"),
		pointScaleLoc:     loc("pointScale"),
		gpuMeshes:         make(map[*scene.Mesh]*GPUMesh),
	}, nil
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer and uploads the per-frame light.
func (r *Renderer) BeginFrame(sky core.Color, light scene.Light, ambient core.Color) {
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform3f(r.lightPosLoc, light.Position.X, light.Position.Y, light.Position.Z)
	gl.Uniform3f(r.lightColorLoc, light.Color.R, light.Color.G, light.Color.B)
	gl.Uniform1f(r.lightIntensityLoc, light.Intensity)
	gl.Uniform3f(r.ambientColorLoc, ambient.R, ambient.G, ambient.B)
}

// DrawMesh uploads the mesh on first use and issues one draw call.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp, model math.Mat4) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0][0])
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0][0])

	mat := mesh.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}
	points := mesh.DrawMode == scene.DrawPoints
	restore := r.applyMaterial(mat, points)
	defer restore()

	gl.BindVertexArray(gpu.VAO)
	mode := uint32(gl.TRIANGLES)
	switch mesh.DrawMode {
	case scene.DrawLines:
		mode = gl.LINES
	case scene.DrawPoints:
		mode = gl.POINTS
	}
	if gpu.HasIndices {
		gl.DrawElements(mode, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(mode, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
}

// applyMaterial sets material uniforms and GL state, returning a function
// that puts the state back.
func (r *Renderer) applyMaterial(mat *scene.Material, points bool) func() {
	a := mat.Albedo
	gl.Uniform4f(r.albedoLoc, a.R, a.G, a.B, a.A)
	opacity := mat.Opacity
	if opacity <= 0 {
		opacity = 1
	}
	gl.Uniform1f(r.opacityLoc, opacity)
	gl.Uniform1i(r.flatLoc, boolToInt(mat.FlatShading))
	gl.Uniform1i(r.unlitLoc, boolToInt(mat.Unlit))
	gl.Uniform1i(r.isPointsLoc, boolToInt(points))
	scale := mat.PointSize
	if scale <= 0 {
		scale = 1
	}
	gl.Uniform1f(r.pointScaleLoc, scale)

	blended := mat.Additive || opacity < 1 || points
	if blended {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		if mat.Additive {
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
		} else {
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		}
	}
	wire := mat.Wireframe && !points
	if wire {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	return func() {
		if blended {
			gl.Disable(gl.BLEND)
			gl.DepthMask(true)
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		}
		if wire {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}
}

// UpdateMesh re-uploads the vertex and index data of a mesh whose contents
// change every frame, such as particle point clouds.
func (r *Renderer) UpdateMesh(mesh *scene.Mesh) {
	gpu, ok := r.gpuMeshes[mesh]
	if !ok {
		if g := r.ensureUploaded(mesh); g != nil {
			g.Dynamic = true
		}
		return
	}
	stride := int(unsafe.Sizeof(core.Vertex{}))
	gpu.VertexCount = int32(len(mesh.Vertices))
	gpu.IndexCount = int32(len(mesh.Indices))

	gl.BindVertexArray(gpu.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	if len(mesh.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*stride, gl.Ptr(mesh.Vertices), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}
	if gpu.HasIndices && len(mesh.Indices) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.DYNAMIC_DRAW)
	}
	gl.BindVertexArray(0)
	gpu.Dynamic = true
}

// ReleaseMesh frees the GPU buffers for mesh, if any.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	gpu, ok := r.gpuMeshes[mesh]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &gpu.VAO)
	gl.DeleteBuffers(1, &gpu.VBO)
	if gpu.HasIndices {
		gl.DeleteBuffers(1, &gpu.EBO)
	}
	delete(r.gpuMeshes, mesh)
	mesh.GPUData = nil
}

// MeshCount reports how many meshes currently live on the GPU.
func (r *Renderer) MeshCount() int {
	return len(r.gpuMeshes)
}

func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	gl.DeleteProgram(r.program)
}

func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		if gpu.VertexCount == 0 {
			return nil
		}
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		VertexCount: int32(len(mesh.Vertices)),
		IndexCount:  int32(len(mesh.Indices)),
		HasIndices:  mesh.Indexed(),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		if len(mesh.Indices) > 0 {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
				len(mesh.Indices)*4,
				gl.Ptr(mesh.Indices),
				gl.STATIC_DRAW)
		}
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
