// Package screenshot resolves, fits, and rasterizes the images that land
// on demo slides.
package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// extensions are probed in order of preference.
var extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".webp"}

// Embedded images larger than this get downscaled so decks stay small.
const (
	maxPixelWidth  = 1920
	maxPixelHeight = 1080
)

// Find locates an image file for the given key inside dir. A key that is
// already a path to an existing file wins outright. Otherwise the key and
// its snake/kebab/lowercase variants are probed against the known
// extensions, numeric keys additionally as slideN and slide_N, and as a
// last resort the first sorted "key*" glob match is taken.
func Find(dir, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	if filepath.Ext(key) != "" {
		for _, p := range []string{key, filepath.Join(dir, key)} {
			if isFile(p) {
				return p, true
			}
		}
	}

	for _, name := range nameVariants(key) {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if isFile(p) {
				return p, true
			}
		}
	}

	for _, ext := range extensions {
		matches, err := filepath.Glob(filepath.Join(dir, key+"*"+ext))
		if err == nil && len(matches) > 0 {
			return matches[0], true
		}
	}

	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func nameVariants(key string) []string {
	variants := []string{key}
	add := func(v string) {
		for _, seen := range variants {
			if seen == v {
				return
			}
		}
		variants = append(variants, v)
	}

	add(strings.ReplaceAll(key, " ", "_"))
	add(strings.ReplaceAll(key, " ", "-"))
	add(strings.ToLower(key))
	add(strings.ToLower(strings.ReplaceAll(key, " ", "_")))

	if isDigits(key) {
		add("slide" + key)
		add("slide_" + key)
	}

	return variants
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Fit scales a srcW x srcH image to the largest size that fits inside
// boundW x boundH while preserving the aspect ratio. Degenerate inputs
// yield a zero box.
func Fit(srcW, srcH int, boundW, boundH float64) (float64, float64) {
	if srcW <= 0 || srcH <= 0 || boundW <= 0 || boundH <= 0 {
		return 0, 0
	}

	aspect := float64(srcW) / float64(srcH)
	h := boundH
	w := h * aspect
	if w > boundW {
		w = boundW
		h = w / aspect
	}
	return w, h
}

// CenterIn returns the top-left position that centers a fitted w x h box
// inside the given bounding box.
func CenterIn(boundX, boundY, boundW, boundH, w, h float64) (float64, float64) {
	return boundX + (boundW-w)/2, boundY + (boundH-h)/2
}

// Load reads and decodes an image, downscaling it when it exceeds the
// embed cap. It returns bytes ready for embedding, the media extension,
// and the pixel dimensions.
func Load(path string) ([]byte, string, int, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("read screenshot: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", 0, 0, fmt.Errorf("decode screenshot %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// png/jpeg under the cap embed as-is; everything else re-encodes.
	if w <= maxPixelWidth && h <= maxPixelHeight {
		switch format {
		case "png":
			return raw, "png", w, h, nil
		case "jpeg":
			return raw, "jpeg", w, h, nil
		}
	}

	if w > maxPixelWidth || h > maxPixelHeight {
		img = imaging.Fit(img, maxPixelWidth, maxPixelHeight, imaging.Lanczos)
		bounds = img.Bounds()
		w, h = bounds.Dx(), bounds.Dy()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, "", 0, 0, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), "png", w, h, nil
}

// Placeholder renders a light-gray canvas with a border and a centered
// caption, used when no screenshot resolves for a slide. When ttfPath
// names a readable TrueType font the caption uses it; otherwise the
// fixed 7x13 face steps in.
func Placeholder(caption string, w, h int, ttfPath string) ([]byte, int, int, error) {
	canvas := imaging.New(w, h, color.NRGBA{R: 0xF8, G: 0xFA, B: 0xFC, A: 0xFF})

	borderColor := image.NewUniform(color.NRGBA{R: 0xE2, G: 0xE8, B: 0xF0, A: 0xFF})
	const bw = 4
	draw.Draw(canvas, image.Rect(0, 0, w, bw), borderColor, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, h-bw, w, h), borderColor, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, bw, h), borderColor, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(w-bw, 0, w, h), borderColor, image.Point{}, draw.Src)

	if err := drawCaption(canvas, caption, ttfPath); err != nil {
		return nil, 0, 0, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, 0, 0, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), w, h, nil
}

func drawCaption(canvas *image.NRGBA, caption, ttfPath string) error {
	bounds := canvas.Bounds()
	textColor := color.NRGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF}

	if ttfPath != "" {
		if err := drawCaptionTTF(canvas, caption, ttfPath, textColor); err == nil {
			return nil
		}
		// Unreadable or unparsable font falls through to the fixed face.
	}

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(caption)
	d.Dot = fixed.Point26_6{
		X: fixed.I(bounds.Dx()/2) - width/2,
		Y: fixed.I(bounds.Dy() / 2),
	}
	d.DrawString(caption)
	return nil
}

func drawCaptionTTF(canvas *image.NRGBA, caption, ttfPath string, textColor color.NRGBA) error {
	fontBytes, err := os.ReadFile(ttfPath)
	if err != nil {
		return err
	}
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return err
	}

	const size = 36
	bounds := canvas.Bounds()

	c := freetype.NewContext()
	c.SetDPI(96)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(bounds)
	c.SetDst(canvas)
	c.SetSrc(image.NewUniform(textColor))

	// Rough horizontal centering; freetype has no measure call, so
	// estimate the advance at half the point size per rune.
	est := len([]rune(caption)) * size / 2
	x := bounds.Dx()/2 - est/2
	if x < 0 {
		x = 0
	}
	_, err = c.DrawString(caption, freetype.Pt(x, bounds.Dy()/2))
	return err
}
