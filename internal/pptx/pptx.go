// Package pptx writes PowerPoint (.pptx) files.
//
// It implements just enough of PresentationML for decks built from
// absolutely positioned textboxes, rounded rectangles, and pictures: a
// single blank master/layout pair, solid fills, and per-slide speaker
// notes. Positions and sizes are given in inches and converted to EMUs
// when the package is written out.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// emu converts inches to English Metric Units, the native coordinate
// space of OOXML drawings.
func emu(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}

// lineEMU converts a line width in points to EMUs.
func lineEMU(points float64) int64 {
	return int64(math.Round(points * emuPerPoint))
}

// fontSize converts points to the 1/100-point units used by rPr sz.
func fontSize(points float64) int {
	return int(math.Round(points * 100))
}

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as an uppercase RRGGBB string, the form srgbClr
// expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Box is a shape's position and size on the slide, in inches.
type Box struct {
	X, Y, W, H float64
}

func (b Box) xfrm() string {
	return fmt.Sprintf(
		`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(b.X), emu(b.Y), emu(b.W), emu(b.H),
	)
}

// Presentation is an in-memory deck. The zero value is not usable; use
// New.
type Presentation struct {
	// Title and Author end up in the document core properties.
	Title  string
	Author string

	width, height float64
	slides        []*Slide
	media         []mediaPart
}

type mediaPart struct {
	data []byte
	ext  string
}

// New returns an empty 16:9 presentation.
func New() *Presentation {
	return &Presentation{width: 13.333, height: 7.5}
}

// AddSlide appends a blank slide and returns it.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{prs: p}
	p.slides = append(p.slides, s)
	return s
}

// SlideCount returns the number of slides added so far.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// Slides returns the slides in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// Slide is a single page of the deck. Shapes render in insertion order,
// which is also their z-order.
type Slide struct {
	prs    *Presentation
	shapes []shape
	notes  string
}

// AddTextBox places an empty textbox at the given position.
func (s *Slide) AddTextBox(b Box) *TextBox {
	tb := &TextBox{Box: b}
	s.shapes = append(s.shapes, tb)
	return tb
}

// AddRoundedRect places a rounded rectangle at the given position. The
// rectangle starts with no fill and no outline.
func (s *Slide) AddRoundedRect(b Box) *RoundedRect {
	r := &RoundedRect{Box: b}
	s.shapes = append(s.shapes, r)
	return r
}

// AddPicture embeds image data on the slide. ext is the media extension
// without the dot ("png", "jpeg", "gif"); callers are responsible for
// handing over data in one of those formats.
func (s *Slide) AddPicture(b Box, data []byte, ext string) *Picture {
	s.prs.media = append(s.prs.media, mediaPart{data: data, ext: ext})
	pic := &Picture{Box: b, media: len(s.prs.media)}
	s.shapes = append(s.shapes, pic)
	return pic
}

// SetNotes attaches speaker notes to the slide, replacing any previous
// notes. Newlines split paragraphs.
func (s *Slide) SetNotes(text string) {
	s.notes = text
}

// Notes returns the slide's speaker notes.
func (s *Slide) Notes() string {
	return s.notes
}

// Pictures returns how many pictures are placed on the slide.
func (s *Slide) Pictures() int {
	n := 0
	for _, sp := range s.shapes {
		if _, ok := sp.(*Picture); ok {
			n++
		}
	}
	return n
}

// WriteFile writes the presentation to path.
func (p *Presentation) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo serializes the presentation as an OPC zip package.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := p.parts()
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return cw.n, fmt.Errorf("write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("close package: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// esc XML-escapes user-supplied text for embedding in a part.
func esc(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
