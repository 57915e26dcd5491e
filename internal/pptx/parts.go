package pptx

import (
	"fmt"
	"strings"
	"time"
)

// Relationship types used by the package. OOXML identifies every
// cross-part reference by one of these URIs.
const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relNotesMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	relNotesSlide     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	// Namespace block shared by every PresentationML part.
	nsPML = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

	// Empty shape-tree header required at the top of every spTree.
	spTreeHeader = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`
)

type part struct {
	name string
	data []byte
}

// relList accumulates a part's relationships in id order.
type relList struct {
	prs  *Presentation
	rels []struct{ id, typ, target string }
}

func (r *relList) add(typ, target string) string {
	id := fmt.Sprintf("rId%d", len(r.rels)+1)
	r.rels = append(r.rels, struct{ id, typ, target string }{id, typ, target})
	return id
}

func (r *relList) xml() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, rel := range r.rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, rel.id, rel.typ, rel.target)
	}
	b.WriteString("</Relationships>")
	return []byte(b.String())
}

// parts assembles every package part in a stable order.
func (p *Presentation) parts() []part {
	var out []part
	add := func(name, data string) {
		out = append(out, part{name: name, data: []byte(data)})
	}

	out = append(out, part{"[Content_Types].xml", p.contentTypes()})

	pkgRels := &relList{prs: p}
	pkgRels.add(relOfficeDocument, "ppt/presentation.xml")
	pkgRels.add(relCoreProps, "docProps/core.xml")
	pkgRels.add(relExtendedProps, "docProps/app.xml")
	out = append(out, part{"_rels/.rels", pkgRels.xml()})

	add("docProps/core.xml", p.coreProps())
	add("docProps/app.xml", p.appProps())

	out = append(out, part{"ppt/presentation.xml", p.presentationXML()})
	presRels := &relList{prs: p}
	presRels.add(relSlideMaster, "slideMasters/slideMaster1.xml")
	presRels.add(relNotesMaster, "notesMasters/notesMaster1.xml")
	for i := range p.slides {
		presRels.add(relSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	out = append(out, part{"ppt/_rels/presentation.xml.rels", presRels.xml()})

	add("ppt/slideMasters/slideMaster1.xml", slideMasterXML)
	masterRels := &relList{prs: p}
	masterRels.add(relSlideLayout, "../slideLayouts/slideLayout1.xml")
	masterRels.add(relTheme, "../theme/theme1.xml")
	out = append(out, part{"ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels.xml()})

	add("ppt/slideLayouts/slideLayout1.xml", slideLayoutXML)
	layoutRels := &relList{prs: p}
	layoutRels.add(relSlideMaster, "../slideMasters/slideMaster1.xml")
	out = append(out, part{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels.xml()})

	add("ppt/notesMasters/notesMaster1.xml", notesMasterXML)
	notesMasterRels := &relList{prs: p}
	notesMasterRels.add(relTheme, "../theme/theme2.xml")
	out = append(out, part{"ppt/notesMasters/_rels/notesMaster1.xml.rels", notesMasterRels.xml()})

	add("ppt/theme/theme1.xml", themeXML)
	add("ppt/theme/theme2.xml", themeXML)

	for i, s := range p.slides {
		n := i + 1
		rels := &relList{prs: p}
		rels.add(relSlideLayout, "../slideLayouts/slideLayout1.xml")
		body := p.slideXML(s, rels)
		if s.notes != "" {
			rels.add(relNotesSlide, fmt.Sprintf("../notesSlides/notesSlide%d.xml", n))
		}
		add(fmt.Sprintf("ppt/slides/slide%d.xml", n), body)
		out = append(out, part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), rels.xml()})

		if s.notes == "" {
			continue
		}
		add(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), notesSlideXML(s.notes))
		noteRels := &relList{prs: p}
		noteRels.add(relNotesMaster, "../notesMasters/notesMaster1.xml")
		noteRels.add(relSlide, fmt.Sprintf("../slides/slide%d.xml", n))
		out = append(out, part{fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n), noteRels.xml()})
	}

	for i, m := range p.media {
		out = append(out, part{fmt.Sprintf("ppt/media/image%d.%s", i+1, m.ext), m.data})
	}

	return out
}

func (p *Presentation) contentTypes() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	b.WriteString(`<Default Extension="jpg" ContentType="image/jpeg"/>`)
	b.WriteString(`<Default Extension="gif" ContentType="image/gif"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme2.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i, s := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
		if s.notes != "" {
			fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, i+1)
		}
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString("</Types>")
	return []byte(b.String())
}

func (p *Presentation) coreProps() string {
	now := time.Now().UTC().Format(time.RFC3339)
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title><dc:creator>%s</dc:creator>`, esc(p.Title), esc(p.Author))
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, now)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, now)
	b.WriteString("</cp:coreProperties>")
	return b.String()
}

func (p *Presentation) appProps() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	fmt.Fprintf(&b, `<Application>deckgen</Application><Slides>%d</Slides><Notes>%d</Notes>`, len(p.slides), p.notesCount())
	b.WriteString("</Properties>")
	return b.String()
}

func (p *Presentation) notesCount() int {
	n := 0
	for _, s := range p.slides {
		if s.notes != "" {
			n++
		}
	}
	return n
}

func (p *Presentation) presentationXML() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation %s>`, nsPML)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	b.WriteString("<p:sldIdLst>")
	for i := range p.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 3+i)
	}
	b.WriteString("</p:sldIdLst>")
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, emu(p.width), emu(p.height))
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`<p:defaultTextStyle/>`)
	b.WriteString("</p:presentation>")
	return []byte(b.String())
}

func (p *Presentation) slideXML(s *Slide, rels *relList) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld %s>`, nsPML)
	b.WriteString("<p:cSld><p:spTree>")
	b.WriteString(spTreeHeader)
	// Shape ids start at 2; id 1 is the group shape above.
	for i, sp := range s.shapes {
		sp.writeSp(&b, i+2, rels)
	}
	b.WriteString("</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>")
	return b.String()
}

func notesSlideXML(notes string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:notes %s>`, nsPML)
	b.WriteString("<p:cSld><p:spTree>")
	b.WriteString(spTreeHeader)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder 1"/>` +
		`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>` +
		`<p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, line := range strings.Split(notes, "\n") {
		if line == "" {
			b.WriteString("<a:p/>")
			continue
		}
		fmt.Fprintf(&b, `<a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>%s</a:t></a:r></a:p>`, esc(line))
	}
	b.WriteString("</p:txBody></p:sp>")
	b.WriteString("</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:notes>")
	return b.String()
}

const slideMasterXML = xmlHeader +
	`<p:sldMaster ` + nsPML + `>` +
	`<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` +
	`<p:spTree>` + spTreeHeader + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideLayoutXML = xmlHeader +
	`<p:sldLayout ` + nsPML + ` type="blank" preserve="1">` +
	`<p:cSld name="Blank"><p:spTree>` + spTreeHeader + `</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const notesMasterXML = xmlHeader +
	`<p:notesMaster ` + nsPML + `>` +
	`<p:cSld><p:spTree>` + spTreeHeader + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`</p:notesMaster>`

// Compact copy of the stock Office theme; the fmtScheme lists must carry
// exactly three entries each.
const themeXML = xmlHeader +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme"><a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="6350" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>` +
	`<a:ln w="12700" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>` +
	`<a:ln w="19050" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`
