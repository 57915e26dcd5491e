// Package deck builds the fixed pitch-deck narrative: title, problem,
// scale, solution, demo, proof, roadmap, ask. Content comes from a
// config; geometry lives in the builders.
package deck

import (
	"fmt"
	"strings"

	"deckgen/internal/config"
	"deckgen/internal/palette"
	"deckgen/internal/pptx"
	"deckgen/internal/screenshot"
)

// maxDemoSlides caps how many demo slides a config can add; the deck
// stays in the 8-10 slide range.
const maxDemoSlides = 3

type builder struct {
	cfg config.Config
	pal palette.Palette
	prs *pptx.Presentation
}

// Build assembles the full presentation from the config.
func Build(cfg config.Config) (*pptx.Presentation, error) {
	pal := palette.Default()
	if err := pal.Apply(cfg.Theme.Colors); err != nil {
		return nil, err
	}
	for _, stat := range cfg.Scale.Stats {
		if stat.Color == "" {
			continue
		}
		if _, err := pal.Get(stat.Color); err != nil {
			return nil, fmt.Errorf("scale stat %q: %w", stat.Value, err)
		}
	}

	b := &builder{cfg: cfg, pal: pal, prs: pptx.New()}
	b.prs.Title = cfg.Product.Name
	b.prs.Author = "deckgen"

	b.titleSlide()
	b.problemSlide()
	b.scaleSlide()
	b.solutionSlide()
	b.demoSlides()
	b.proofSlide()
	b.roadmapSlide()
	if err := b.askSlide(); err != nil {
		return nil, err
	}

	return b.prs, nil
}

func (b *builder) color(role string) pptx.Color {
	return b.pal[role]
}

// text drops a single-paragraph textbox and returns it for further
// styling.
func (b *builder) text(s *pptx.Slide, box pptx.Box, text string, size float64, bold bool, c pptx.Color) *pptx.TextBox {
	tb := s.AddTextBox(box)
	tb.Frame.WordWrap = true
	p := tb.Frame.AddParagraph()
	p.AddRun(pptx.Run{Text: text, Size: size, Bold: bold, Color: c})
	return tb
}

// contextLabel puts the uppercased kicker at the top-left of a slide.
func (b *builder) contextLabel(s *pptx.Slide, label string, c pptx.Color) {
	b.text(s, pptx.Box{X: 0.75, Y: 0.6, W: 3, H: 0.4}, strings.ToUpper(label), 12, true, c)
}

// actionTitle puts the takeaway line under the kicker.
func (b *builder) actionTitle(s *pptx.Slide, title string) {
	tb := b.text(s, pptx.Box{X: 0.75, Y: 1.0, W: 11.8, H: 1.2}, title, 28, true, b.color(palette.Secondary))
	tb.Frame.Paragraphs[0].LineSpacing = 1.2
}

// card draws a bordered white card with a title and optional body text.
func (b *builder) card(s *pptx.Slide, x, y, w, h float64, title, body string, titleColor, borderColor pptx.Color) {
	rect := s.AddRoundedRect(pptx.Box{X: x, Y: y, W: w, H: h})
	white := b.color(palette.White)
	rect.Fill = &white
	rect.Line = &borderColor
	rect.LineWidth = 1

	b.text(s, pptx.Box{X: x + 0.2, Y: y + 0.2, W: w - 0.4, H: 0.5}, title, 14, true, titleColor)
	if body != "" {
		tb := b.text(s, pptx.Box{X: x + 0.2, Y: y + 0.6, W: w - 0.4, H: h - 0.8}, body, 12, false, b.color(palette.Muted))
		tb.Frame.Paragraphs[0].LineSpacing = 1.4
	}
}

// screenshotInto resolves a screenshot for key and places it fitted and
// centered inside the region. Missing or unreadable files degrade to a
// generated placeholder, then to a plain textbox.
func (b *builder) screenshotInto(s *pptx.Slide, key string, region pptx.Box) {
	if path, ok := screenshot.Find(b.cfg.Screenshots, key); ok {
		data, ext, w, h, err := screenshot.Load(path)
		if err == nil {
			b.placeImage(s, data, ext, w, h, region)
			return
		}
	}

	caption := "Screenshot placeholder"
	if key != "" {
		caption = fmt.Sprintf("No screenshot found for %q", key)
	}
	data, w, h, err := screenshot.Placeholder(caption, 1280, 720, b.cfg.Theme.Font)
	if err != nil {
		tb := b.text(s, region, "📷  Add your demo screenshot here", 24, false, b.color(palette.Muted))
		tb.Frame.Paragraphs[0].Align = pptx.AlignCenter
		tb.Frame.Anchor = pptx.AnchorMiddle
		return
	}
	b.placeImage(s, data, "png", w, h, region)
}

func (b *builder) placeImage(s *pptx.Slide, data []byte, ext string, w, h int, region pptx.Box) {
	fw, fh := screenshot.Fit(w, h, region.W, region.H)
	x, y := screenshot.CenterIn(region.X, region.Y, region.W, region.H, fw, fh)
	s.AddPicture(pptx.Box{X: x, Y: y, W: fw, H: fh}, data, ext)
}

// notes attaches the slide's speaker notes, preferring a config override.
func (b *builder) notes(s *pptx.Slide, key string) {
	if text, ok := b.cfg.Notes[key]; ok && text != "" {
		s.SetNotes(text)
		return
	}
	s.SetNotes(defaultNotes[key])
}
