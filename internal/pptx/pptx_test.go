package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() *Presentation {
	p := New()
	p.Title = "Sample Deck"

	s := p.AddSlide()
	tb := s.AddTextBox(Box{X: 0.75, Y: 1, W: 8, H: 1})
	tb.Frame.WordWrap = true
	para := tb.Frame.AddParagraph()
	para.Align = AlignCenter
	para.LineSpacing = 1.2
	para.AddRun(Run{Text: "Big <Launch> & Co", Size: 28, Bold: true, Color: RGB(0x00, 0x66, 0xCC)})

	rect := s.AddRoundedRect(Box{X: 1, Y: 3, W: 4, H: 2})
	fill := RGB(0xFF, 0xFF, 0xFF)
	line := RGB(0xE2, 0xE8, 0xF0)
	rect.Fill = &fill
	rect.Line = &line
	rect.LineWidth = 2

	s.AddPicture(Box{X: 6, Y: 3, W: 3, H: 2}, []byte("not-a-real-png"), "png")
	s.SetNotes("TIMING: 30 seconds\nSAY: hello")

	p.AddSlide().SetNotes("second slide notes")
	return p
}

func writeParts(t *testing.T, p *Presentation) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(data)
	}
	return parts
}

func TestWritePackageStructure(t *testing.T) {
	parts := writeParts(t, buildSample())

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/notesMasters/notesMaster1.xml",
		"ppt/theme/theme1.xml",
		"ppt/theme/theme2.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/notesSlides/notesSlide1.xml",
		"ppt/notesSlides/notesSlide2.xml",
		"ppt/media/image1.png",
	} {
		assert.Contains(t, parts, name)
	}

	types := parts["[Content_Types].xml"]
	assert.Contains(t, types, `PartName="/ppt/slides/slide2.xml"`)
	assert.Contains(t, types, `PartName="/ppt/notesSlides/notesSlide1.xml"`)

	pres := parts["ppt/presentation.xml"]
	assert.Contains(t, pres, "<p:notesMasterIdLst>")
	assert.Equal(t, 2, strings.Count(pres, "<p:sldId "))
}

func TestSlideXMLContent(t *testing.T) {
	parts := writeParts(t, buildSample())
	slide := parts["ppt/slides/slide1.xml"]

	// User text is escaped, not emitted raw.
	assert.Contains(t, slide, "Big &lt;Launch&gt; &amp; Co")
	assert.NotContains(t, slide, "Big <Launch>")

	assert.Contains(t, slide, `sz="2800"`)
	assert.Contains(t, slide, `b="1"`)
	assert.Contains(t, slide, `<a:srgbClr val="0066CC"/>`)
	assert.Contains(t, slide, `algn="ctr"`)
	assert.Contains(t, slide, `<a:spcPct val="120000"/>`)

	assert.Contains(t, slide, `prst="roundRect"`)
	assert.Contains(t, slide, `<a:ln w="25400">`) // 2pt border
	assert.Contains(t, slide, `r:embed="rId2"`)

	rels := parts["ppt/slides/_rels/slide1.xml.rels"]
	assert.Contains(t, rels, `Target="../slideLayouts/slideLayout1.xml"`)
	assert.Contains(t, rels, `Target="../media/image1.png"`)
	assert.Contains(t, rels, `Target="../notesSlides/notesSlide1.xml"`)
}

func TestNotesSlide(t *testing.T) {
	parts := writeParts(t, buildSample())
	notes := parts["ppt/notesSlides/notesSlide1.xml"]

	assert.Contains(t, notes, `<p:ph type="body" idx="1"/>`)
	assert.Contains(t, notes, "<a:t>TIMING: 30 seconds</a:t>")
	assert.Contains(t, notes, "<a:t>SAY: hello</a:t>")

	rels := parts["ppt/notesSlides/_rels/notesSlide1.xml.rels"]
	assert.Contains(t, rels, `Target="../notesMasters/notesMaster1.xml"`)
	assert.Contains(t, rels, `Target="../slides/slide1.xml"`)
}

func TestNoNotesMeansNoNotesPart(t *testing.T) {
	p := New()
	p.AddSlide()

	parts := writeParts(t, p)
	assert.NotContains(t, parts, "ppt/notesSlides/notesSlide1.xml")
	assert.NotContains(t, parts["[Content_Types].xml"], "notesSlide1")
	assert.NotContains(t, parts["ppt/slides/_rels/slide1.xml.rels"], "notesSlide")
}

func TestUnits(t *testing.T) {
	assert.Equal(t, int64(914400), emu(1))
	assert.Equal(t, int64(685800), emu(0.75))
	assert.Equal(t, int64(12700), lineEMU(1))
	assert.Equal(t, 1200, fontSize(12))
	assert.Equal(t, 1450, fontSize(14.5))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "0066CC", RGB(0x00, 0x66, 0xCC).Hex())
	assert.Equal(t, "FFFFFF", RGB(255, 255, 255).Hex())
	assert.Equal(t, "000000", Color{}.Hex())
}

func TestSlideAccessors(t *testing.T) {
	p := New()
	s := p.AddSlide()
	assert.Equal(t, 1, p.SlideCount())
	assert.Equal(t, 0, s.Pictures())

	s.AddPicture(Box{W: 1, H: 1}, []byte{1}, "png")
	s.AddTextBox(Box{W: 1, H: 1})
	assert.Equal(t, 1, s.Pictures())

	s.SetNotes("n")
	assert.Equal(t, "n", s.Notes())
}

func TestTextFrameText(t *testing.T) {
	var f TextFrame
	p1 := f.AddParagraph()
	p1.AddRun(Run{Text: "hello "})
	p1.AddRun(Run{Text: "world"})
	f.AddParagraph().AddRun(Run{Text: "second"})
	assert.Equal(t, "hello world\nsecond", f.Text())
}
