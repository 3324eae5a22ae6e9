package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	stbi "neilpa.me/go-stbi"
)

// loadTextureAtlas uploads the sprite atlas with nearest-neighbor
// filtering so sprite edges stay crisp.
func loadTextureAtlas(path string) (uint32, error) {
	rgba, err := stbi.Load(path)
	if err != nil {
		return 0, fmt.Errorf("render: load texture atlas %s: %w", path, err)
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return textureID, nil
}
