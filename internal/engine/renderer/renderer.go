// Package renderer uploads the static mesh and submits the per-frame
// transform uniforms.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"glcam/internal/engine/shader"
	"glcam/internal/logger"
	"glcam/pkg/math"
)

const vertexShaderSource = `#version 410 core

layout (location = 0) in vec3 pos;
layout (location = 1) in vec3 inColor;

uniform float time;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 color;

void main() {
	gl_Position = projection * view * model * vec4(pos, 1.0);
	color = inColor;
}
`

const fragmentShaderSource = `#version 410 core

in vec3 color;

out vec4 outColor;

void main() {
	outColor = vec4(color, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Mesh   string
}

// Renderer owns the GL program, the uploaded mesh and the uniform
// locations. Create it only after the GL context exists.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	count   int32

	timeLoc       int32
	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
}

// New initializes OpenGL, compiles the pipeline program and uploads the
// configured mesh.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthRange(0, 1)
	gl.Enable(gl.DEPTH_CLAMP)

	gl.ClearColor(0.8, 0.0, 0.5, 1.0)
	gl.ClearDepth(1.0)

	r := &Renderer{}

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.modelLoc = shader.MustGetUniform(r.program, "model")
	r.viewLoc = shader.MustGetUniform(r.program, "view")
	r.projectionLoc = shader.MustGetUniform(r.program, "projection")
	// The time uniform is declared but not read by the current shader, so
	// the driver may report it inactive.
	r.timeLoc = shader.GetUniform(r.program, "time")

	mesh, err := ParseMesh(cfg.Mesh)
	if err != nil {
		return nil, err
	}
	r.uploadMesh(mesh)

	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize updates the viewport after a window resize. The projection stays
// as built at startup.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the frame, submits the matrices and time as uniforms and
// issues the draw call.
func (r *Renderer) Draw(model, view, projection math.Mat4, elapsed float32) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform1f(r.timeLoc, elapsed)
	gl.UniformMatrix4fv(r.modelLoc, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.viewLoc, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, projection.Ptr())

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.count)
	gl.BindVertexArray(0)
}

// uploadMesh creates the VAO/VBO for a mesh. Positions fill the first half
// of the buffer, colors the second half, so attribute 1 starts at the
// halfway offset.
func (r *Renderer) uploadMesh(mesh Mesh) {
	r.count = mesh.Count

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	colorOffset := uintptr(len(mesh.Vertices) / 2 * 4)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, unsafe.Pointer(colorOffset))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.String("mesh", mesh.Name),
		zap.Int32("vertices", mesh.Count),
	)
}
