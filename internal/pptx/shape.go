package pptx

import (
	"fmt"
	"math"
	"strings"
)

// Align is a paragraph's horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) attr() string {
	switch a {
	case AlignCenter:
		return ` algn="ctr"`
	case AlignRight:
		return ` algn="r"`
	}
	return ""
}

// Anchor is a text frame's vertical anchor.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorMiddle
	AnchorBottom
)

func (a Anchor) attr() string {
	switch a {
	case AnchorMiddle:
		return ` anchor="ctr"`
	case AnchorBottom:
		return ` anchor="b"`
	}
	return ""
}

// Run is a span of uniformly formatted text.
type Run struct {
	Text  string
	Size  float64 // points; 0 keeps the theme default
	Bold  bool
	Color Color
}

// Paragraph is a line of runs with paragraph-level formatting.
type Paragraph struct {
	Align       Align
	LineSpacing float64 // multiple of single spacing; 0 keeps the default
	Runs        []Run
}

// AddRun appends a run to the paragraph.
func (p *Paragraph) AddRun(r Run) {
	p.Runs = append(p.Runs, r)
}

// TextFrame holds a shape's paragraphs.
type TextFrame struct {
	WordWrap   bool
	Anchor     Anchor
	Paragraphs []*Paragraph
}

// AddParagraph appends an empty paragraph and returns it.
func (f *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	f.Paragraphs = append(f.Paragraphs, p)
	return p
}

// Text returns the frame's plain text, paragraphs joined by newlines.
func (f *TextFrame) Text() string {
	lines := make([]string, len(f.Paragraphs))
	for i, p := range f.Paragraphs {
		var b strings.Builder
		for _, r := range p.Runs {
			b.WriteString(r.Text)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (f *TextFrame) xml(b *strings.Builder) {
	wrap := "none"
	if f.WordWrap {
		wrap = "square"
	}
	fmt.Fprintf(b, `<p:txBody><a:bodyPr wrap="%s" rtlCol="0"%s/><a:lstStyle/>`, wrap, f.Anchor.attr())
	if len(f.Paragraphs) == 0 {
		b.WriteString("<a:p/>")
	}
	for _, p := range f.Paragraphs {
		b.WriteString("<a:p>")
		if p.Align != AlignLeft || p.LineSpacing != 0 {
			fmt.Fprintf(b, "<a:pPr%s>", p.Align.attr())
			if p.LineSpacing != 0 {
				fmt.Fprintf(b, `<a:lnSpc><a:spcPct val="%d"/></a:lnSpc>`, int(math.Round(p.LineSpacing*100000)))
			}
			b.WriteString("</a:pPr>")
		}
		for _, r := range p.Runs {
			b.WriteString("<a:r><a:rPr lang=\"en-US\"")
			if r.Size != 0 {
				fmt.Fprintf(b, ` sz="%d"`, fontSize(r.Size))
			}
			if r.Bold {
				b.WriteString(` b="1"`)
			}
			b.WriteString(` dirty="0">`)
			fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.Color.Hex())
			fmt.Fprintf(b, "</a:rPr><a:t>%s</a:t></a:r>", esc(r.Text))
		}
		b.WriteString("</a:p>")
	}
	b.WriteString("</p:txBody>")
}

// shape is anything that can render itself into a slide's spTree. rels
// collects relationship ids for shapes that reference package parts.
type shape interface {
	writeSp(b *strings.Builder, id int, rels *relList)
}

// TextBox is a borderless, unfilled text shape.
type TextBox struct {
	Box   Box
	Frame TextFrame
}

func (t *TextBox) writeSp(b *strings.Builder, id int, rels *relList) {
	fmt.Fprintf(b,
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`,
		id, id-1,
	)
	b.WriteString("<p:spPr>")
	b.WriteString(t.Box.xfrm())
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	t.Frame.xml(b)
	b.WriteString("</p:sp>")
}

// RoundedRect is a rounded rectangle with an optional solid fill,
// optional outline, and an optional text body.
type RoundedRect struct {
	Box       Box
	Fill      *Color
	Line      *Color
	LineWidth float64 // points; 0 means 1pt when Line is set
	Frame     TextFrame
}

func (r *RoundedRect) writeSp(b *strings.Builder, id int, rels *relList) {
	fmt.Fprintf(b,
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="RoundedRect %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`,
		id, id-1,
	)
	b.WriteString("<p:spPr>")
	b.WriteString(r.Box.xfrm())
	b.WriteString(`<a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom>`)
	if r.Fill != nil {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.Fill.Hex())
	} else {
		b.WriteString("<a:noFill/>")
	}
	if r.Line != nil {
		width := r.LineWidth
		if width == 0 {
			width = 1
		}
		fmt.Fprintf(b, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`,
			lineEMU(width), r.Line.Hex())
	} else {
		b.WriteString("<a:ln><a:noFill/></a:ln>")
	}
	b.WriteString("</p:spPr>")
	r.Frame.xml(b)
	b.WriteString("</p:sp>")
}

// Picture is an embedded image stretched to its box. Callers compute the
// box from the image's aspect ratio before placing it.
type Picture struct {
	Box   Box
	media int // 1-based index into the presentation's media parts
}

func (p *Picture) writeSp(b *strings.Builder, id int, rels *relList) {
	rID := rels.add(relImage, fmt.Sprintf("../media/image%d.%s", p.media, rels.prs.media[p.media-1].ext))
	fmt.Fprintf(b,
		`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`,
		id, id-1,
	)
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, rID)
	b.WriteString("<p:spPr>")
	b.WriteString(p.Box.xfrm())
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`)
}
