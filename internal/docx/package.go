package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"time"
)

// Part names inside the package.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partFooter       = "word/footer1.xml"
)

const (
	footerRelID = "rId3"
	bulletNumID = 1
)

// Zip entries carry this timestamp so equal documents produce equal bytes.
var packageEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="` + footerRelID + `" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>` +
	`</Relationships>`

const appXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Application>docxgen</Application></Properties>`

// A single-level bullet list; numId 1 is referenced by bullet paragraphs.
const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

type part struct {
	name string
	data []byte
}

// WriteTo serializes the document as a .docx zip package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}

	parts, err := d.parts()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, p := range parts {
		header := &zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: packageEpoch,
		}
		fw, err := zw.CreateHeader(header)
		if err != nil {
			return cw.n, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return cw.n, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("close package: %w", err)
	}
	return cw.n, nil
}

func (d *Document) parts() ([]part, error) {
	documentXML, err := marshalPart(d.documentTree())
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	stylesXML, err := marshalPart(d.stylesTree())
	if err != nil {
		return nil, fmt.Errorf("marshal styles: %w", err)
	}
	footerXML, err := marshalPart(d.footerTree())
	if err != nil {
		return nil, fmt.Errorf("marshal footer: %w", err)
	}
	coreXML, err := marshalPart(xmlCoreProperties{
		XmlnsCP: nsCP,
		XmlnsDC: nsDC,
		Title:   d.Properties.Title,
		Creator: d.Properties.Creator,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal core properties: %w", err)
	}

	return []part{
		{partContentTypes, []byte(contentTypesXML)},
		{partRootRels, []byte(rootRelsXML)},
		{partCore, coreXML},
		{partApp, []byte(appXML)},
		{partDocument, documentXML},
		{partDocumentRels, []byte(documentRelsXML)},
		{partStyles, stylesXML},
		{partNumbering, []byte(numberingXML)},
		{partFooter, footerXML},
	}, nil
}

func (d *Document) documentTree() xmlDocument {
	paragraphs := make([]xmlParagraph, 0, len(d.body))
	for _, p := range d.body {
		paragraphs = append(paragraphs, toXMLParagraph(p, bulletNumID))
	}
	return xmlDocument{
		XmlnsW: nsW,
		XmlnsR: nsR,
		Body: xmlBody{
			Paragraphs: paragraphs,
			SectPr: xmlSectPr{
				FooterRef: &xmlHeaderFooterRef{Type: "default", ID: footerRelID},
				PgSz:      xmlPgSz{W: d.Page.Width, H: d.Page.Height},
				PgMar: xmlPgMar{
					Top:    d.Page.MarginTop,
					Right:  d.Page.MarginRight,
					Bottom: d.Page.MarginBottom,
					Left:   d.Page.MarginLeft,
					Header: 720,
					Footer: 720,
				},
			},
		},
	}
}

func (d *Document) stylesTree() xmlStyles {
	tree := xmlStyles{XmlnsW: nsW}
	if rpr := toXMLRPr(RunProps{}, d.Font); rpr != nil {
		tree.DocDefaults.RPrDefault.RPr = *rpr
	}
	for _, def := range d.styles {
		tree.Styles = append(tree.Styles, toXMLStyle(def))
	}
	return tree
}

func (d *Document) footerTree() xmlFooter {
	footer := xmlFooter{XmlnsW: nsW, XmlnsR: nsR}
	for _, p := range d.footer {
		footer.Paragraphs = append(footer.Paragraphs, toXMLParagraph(p, bulletNumID))
	}
	// A footer part must hold at least one paragraph.
	if len(footer.Paragraphs) == 0 {
		footer.Paragraphs = []xmlParagraph{{}}
	}
	return footer
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
