package bigchar

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererWithoutFont(t *testing.T) {
	r := NewRenderer([]string{"/nonexistent/font.ttc"})
	assert.False(t, r.Available())
	assert.Empty(t, r.Render("王", 16, 8))
}

func TestRenderRejectsEmpty(t *testing.T) {
	r := NewRenderer(nil)
	assert.Empty(t, r.Render("", 16, 8))
	assert.Empty(t, r.Render("王", 0, 8))
}

func TestHalfBlocks(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 255})
	img.SetGray(1, 0, color.Gray{Y: 255})
	img.SetGray(2, 1, color.Gray{Y: 255})

	assert.Equal(t, "█▀▄ ", halfBlocks(img, 4, 1))
}

func TestDownsampleAverages(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}

	out := downsample(img, 2, 2)
	assert.Equal(t, uint8(200), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), out.GrayAt(1, 1).Y)
}

func TestBlank(t *testing.T) {
	b := blank(3, 2)
	assert.Equal(t, []string{"   ", "   "}, strings.Split(b, "\n"))
}
