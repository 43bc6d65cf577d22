// Package bigchar renders a traditional name as half-block banner art.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontPaths are the CJK fonts tried, in order, on first use.
var FontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSerifCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/arphic/uming.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\mingliu.ttc",
	"C:\\Windows\\Fonts\\msjh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

const (
	faceSize  = 64
	threshold = 40
)

type cacheKey struct {
	text       string
	cols, rows int
}

// Renderer draws glyphs from the first usable font in a path list.
// The font is loaded on first use; a Renderer is safe for concurrent use.
type Renderer struct {
	paths []string

	once sync.Once
	face font.Face

	mu    sync.Mutex
	cache map[cacheKey]string
}

// NewRenderer returns a renderer that searches paths for a CJK font.
func NewRenderer(paths []string) *Renderer {
	return &Renderer{paths: paths, cache: make(map[cacheKey]string)}
}

var std = NewRenderer(FontPaths)

// Available reports whether the default renderer found a font.
func Available() bool { return std.Available() }

// Render renders text with the default renderer.
func Render(text string, cols, rows int) string { return std.Render(text, cols, rows) }

// Available reports whether a font could be loaded.
func (r *Renderer) Available() bool {
	r.once.Do(r.load)
	return r.face != nil
}

func (r *Renderer) load() {
	for _, path := range r.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			r.face = face
			return
		}
	}
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: faceSize, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}
	return nil
}

// Render draws each character of text into a cols x rows cell block and
// joins the blocks side by side, one space apart. It returns "" when no
// font is available.
func (r *Renderer) Render(text string, cols, rows int) string {
	if text == "" || cols <= 0 || rows <= 0 || !r.Available() {
		return ""
	}

	key := cacheKey{text, cols, rows}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cache[key]; ok {
		return s
	}

	var blocks [][]string
	for _, ch := range text {
		blocks = append(blocks, strings.Split(r.glyph(ch, cols, rows), "\n"))
	}

	lines := make([]string, rows)
	for i := range lines {
		parts := make([]string, len(blocks))
		for j, b := range blocks {
			parts[j] = b[i]
		}
		lines[i] = strings.Join(parts, " ")
	}
	out := strings.Join(lines, "\n")
	r.cache[key] = out
	return out
}

func (r *Renderer) glyph(ch rune, cols, rows int) string {
	bounds, _, ok := r.face.GlyphBounds(ch)
	if !ok {
		return blank(cols, rows)
	}
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	pad := 4
	size := max(w+pad*2, h+pad*2, faceSize)

	src := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P((size-w)/2-bounds.Min.X.Floor(), size-pad-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(ch))

	return halfBlocks(downsample(src, cols, rows*2), cols, rows)
}

// downsample shrinks src to w x h by area averaging.
func downsample(src *image.Gray, w, h int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xr := float64(sw) / float64(w)
	yr := float64(sh) / float64(h)

	for y := 0; y < h; y++ {
		y0, y1 := int(float64(y)*yr), min(int(float64(y+1)*yr), sh)
		for x := 0; x < w; x++ {
			x0, x1 := int(float64(x)*xr), min(int(float64(x+1)*xr), sw)
			var sum, n int
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(x, y, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

// halfBlocks maps pixel pairs to ▀ ▄ █ cells; each cell covers two rows.
func halfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.GrayAt(col, row*2).Y > threshold
			bottom := img.GrayAt(col, row*2+1).Y > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func blank(cols, rows int) string {
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
