package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
)

const (
	hudCanvasSize = 512
	hudFontSize   = 24
	hudLineHeight = 28
	hudMargin     = 8
)

// HUD renders debug text lines into an RGBA canvas and blends the
// canvas over the frame as a single textured quad.
type HUD struct {
	program  uint32
	ctx      *freetype.Context
	canvas   *image.RGBA
	texture  uint32
	vao      uint32
	projLoc  int32
	modelLoc int32
}

// NewHUD loads the font and sets up the text overlay pipeline.
func NewHUD(fontPath string) (*HUD, error) {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("render: read font %s: %w", fontPath, err)
	}
	parsed, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, fmt.Errorf("render: parse font %s: %w", fontPath, err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, hudCanvasSize, hudCanvasSize))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
	ctx := freetype.NewContext()
	ctx.SetFont(parsed)
	ctx.SetDst(canvas)
	ctx.SetClip(canvas.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)
	ctx.SetFontSize(hudFontSize)

	program, err := buildProgram("shaders/text.vert", "shaders/text.frag")
	if err != nil {
		return nil, err
	}

	h := &HUD{
		program:  program,
		ctx:      ctx,
		canvas:   canvas,
		projLoc:  gl.GetUniformLocation(program, gl.Str("projection\x00")),
		modelLoc: gl.GetUniformLocation(program, gl.Str("model\x00")),
	}
	h.initQuad()
	h.initTexture()
	return h, nil
}

func (h *HUD) initQuad() {
	vertices := []float32{
		0, 1, 0, 0, 1,
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,

		0, 1, 0, 0, 1,
		1, 0, 0, 1, 0,
		1, 1, 0, 1, 1,
	}
	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, uintptr(3*4))
}

func (h *HUD) initTexture() {
	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(h.canvas.Rect.Size().X), int32(h.canvas.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.canvas.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// SetText redraws the canvas with the given lines and reuploads it.
func (h *HUD) SetText(lines []string) error {
	for i := range h.canvas.Pix {
		h.canvas.Pix[i] = 0
	}
	for i, line := range lines {
		pt := freetype.Pt(hudMargin, hudLineHeight*(i+1))
		if _, err := h.ctx.DrawString(line, pt); err != nil {
			return fmt.Errorf("render: draw hud text: %w", err)
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(h.canvas.Rect.Size().X), int32(h.canvas.Rect.Size().Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.canvas.Pix))
	return nil
}

// Draw blends the overlay over the current frame.
func (h *HUD) Draw(width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(h.program)
	projection := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	gl.UniformMatrix4fv(h.projLoc, 1, false, &projection[0])
	model := mgl32.Scale3D(hudCanvasSize, hudCanvasSize, 1)
	gl.UniformMatrix4fv(h.modelLoc, 1, false, &model[0])

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}
