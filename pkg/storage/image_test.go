package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompressImage(t *testing.T) {
	t.Run("Scales the longest side down to the max dimension", func(t *testing.T) {
		data := encodePNG(t, 1600, 800)

		out, err := CompressImage(data, 400, 80)
		assert.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 400, decoded.Bounds().Dx())
		assert.Equal(t, 200, decoded.Bounds().Dy())
	})

	t.Run("Leaves small images at their original size", func(t *testing.T) {
		data := encodePNG(t, 100, 50)

		out, err := CompressImage(data, 400, 80)
		assert.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
		assert.Equal(t, 50, decoded.Bounds().Dy())
	})

	t.Run("Rejects non-image data", func(t *testing.T) {
		_, err := CompressImage([]byte("not an image"), 400, 80)
		assert.Error(t, err)
	})
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_resume.pdf", SanitizeFilename("my resume.pdf"))
	assert.Equal(t, "rsum.pdf", SanitizeFilename("résumé.pdf"))
	assert.Equal(t, "cert-2026_final.png", SanitizeFilename("cert-2026 final.png"))
	assert.Equal(t, "noext", SanitizeFilename("noext"))
}
