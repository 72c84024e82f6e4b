package viz

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws billboarded point sprites from a shared streaming VBO.
// Sprite format: [x, y, z, size, r, g, b, a] * N (8 floats per sprite).
type Renderer struct {
	spriteProg uint32
	glowProg   uint32
	vao        uint32
	vbo        uint32

	spUViewProj   int32
	spUPointScale int32
	glUViewProj   int32
	glUPointScale int32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{spriteProg: spriteProg, glowProg: glowProg}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(spriteProg)
	r.spUViewProj = gl.GetUniformLocation(spriteProg, gl.Str("uViewProj\x00"))
	r.spUPointScale = gl.GetUniformLocation(spriteProg, gl.Str("uPointScale\x00"))

	gl.UseProgram(glowProg)
	r.glUViewProj = gl.GetUniformLocation(glowProg, gl.Str("uViewProj\x00"))
	r.glUPointScale = gl.GetUniformLocation(glowProg, gl.Str("uPointScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites renders point sprites using the soft-disc program.
// additive: true = additive blend (bursts), false = standard alpha blend.
func (r *Renderer) DrawSprites(buf []float32, viewProj mgl32.Mat4, pointScale float32, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.UniformMatrix4fv(r.spUViewProj, 1, false, &viewProj[0])
	gl.Uniform1f(r.spUPointScale, pointScale)

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders bright sprites with additive blending and radial
// falloff. RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, viewProj mgl32.Mat4, pointScale float32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.UniformMatrix4fv(r.glUViewProj, 1, false, &viewProj[0])
	gl.Uniform1f(r.glUPointScale, pointScale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
