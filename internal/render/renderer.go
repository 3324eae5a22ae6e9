// Package render is the OpenGL rendering collaborator: it turns built
// chunk geometry into GPU meshes and draws them each frame. Nothing
// outside this package (and the executable) touches GL.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Jax-Hax/Minecraft-Clone/internal/mesh"
	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

// vertex layout: 3 position + 2 uv floats.
const vertexStride = 5 * 4

// Mesh is the GPU geometry of one chunk: vertex and index buffers
// behind a VAO, drawn indexed. It satisfies world.Mesh.
type Mesh struct {
	vao      uint32
	vbo      uint32
	ebo      uint32
	elements int32
}

func (m *Mesh) Elements() int32 {
	return m.elements
}

// Renderer owns the block pipeline: shader program, atlas texture and
// camera uniforms.
type Renderer struct {
	program    uint32
	atlas      uint32
	viewProjLoc int32
	viewPosLoc  int32
}

// New initializes GL state, compiles the block shaders and uploads the
// texture atlas. Must run on the main thread with a current context;
// this is the single blocking device-setup step.
func New(atlasPath string) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: init OpenGL: %w", err)
	}
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)

	program, err := buildProgram("shaders/block.vert", "shaders/block.frag")
	if err != nil {
		return nil, err
	}
	atlas, err := loadTextureAtlas(atlasPath)
	if err != nil {
		return nil, err
	}

	gl.UseProgram(program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, atlas)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("atlas\x00")), 0)

	return &Renderer{
		program:     program,
		atlas:       atlas,
		viewProjLoc: gl.GetUniformLocation(program, gl.Str("viewProj\x00")),
		viewPosLoc:  gl.GetUniformLocation(program, gl.Str("viewPos\x00")),
	}, nil
}

// Upload copies chunk geometry into GPU buffers and returns the opaque
// handle the world grid stores. Geometry with a broken index/vertex
// ratio is rejected; that invariant breaking means the builder is
// wrong, not the data.
func (r *Renderer) Upload(d *mesh.Data) (world.Mesh, error) {
	if len(d.Vertices)%4 != 0 || len(d.Indices) != len(d.Vertices)/4*6 {
		return nil, fmt.Errorf("render: malformed chunk geometry: %d indices for %d vertices",
			len(d.Indices), len(d.Vertices))
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)

	if len(d.Vertices) > 0 {
		verts := make([]float32, 0, len(d.Vertices)*5)
		for _, v := range d.Vertices {
			verts = append(verts,
				v.Position.X(), v.Position.Y(), v.Position.Z(),
				v.UV.X(), v.UV.Y())
		}
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(verts), gl.Ptr(verts), gl.STATIC_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(d.Indices), gl.Ptr(d.Indices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, uintptr(3*4))

	return &Mesh{vao: vao, vbo: vbo, ebo: ebo, elements: int32(len(d.Indices))}, nil
}

// Draw renders the chunk meshes with the frame's camera uniforms:
// the combined view-projection matrix and the homogeneous view
// position.
func (r *Renderer) Draw(viewProj mgl32.Mat4, viewPos mgl32.Vec4, meshes []world.Mesh) {
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.program)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, &viewProj[0])
	gl.Uniform4fv(r.viewPosLoc, 1, &viewPos[0])

	for _, m := range meshes {
		gm, ok := m.(*Mesh)
		if !ok || gm.elements == 0 {
			continue
		}
		gl.BindVertexArray(gm.vao)
		gl.DrawElements(gl.TRIANGLES, gm.elements, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
}
