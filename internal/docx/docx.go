// Package docx writes and reads minimal Office Open XML word-processing
// packages: styled paragraphs, a bullet list definition, page geometry and
// a footer that may hold native fields such as PAGE.
package docx

import (
	"bytes"
	"fmt"
)

// FieldPage is the current page number field instruction.
const FieldPage = "PAGE"

// Alignment values for ParagraphProps.Align. Left is the default and is
// written by omitting the value.
const (
	AlignCenter = "center"
	AlignRight  = "right"
	AlignBoth   = "both"
)

// RunProps is character formatting. Size is in half-points.
type RunProps struct {
	Bold  bool
	Size  int
	Color string
}

// ParagraphProps is paragraph formatting. Spacing is in twips.
type ParagraphProps struct {
	Align       string
	SpaceBefore int
	SpaceAfter  int
	KeepNext    bool
}

// Run is a span of text, or a field when Field is set. A field run renders
// Text as its cached result until the viewer recomputes it.
type Run struct {
	Text  string
	Field string
	Props RunProps
}

// Paragraph is a body or footer paragraph. A paragraph without runs is an
// empty spacing line.
type Paragraph struct {
	Style  string
	Bullet bool
	Props  ParagraphProps
	Runs   []Run
}

// Text returns the concatenated text of all non-field runs.
func (p Paragraph) Text() string {
	var sb bytes.Buffer
	for _, r := range p.Runs {
		if r.Field == "" {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// StyleDef declares a paragraph style in styles.xml.
type StyleDef struct {
	ID           string
	Name         string
	BasedOn      string
	Default      bool
	OutlineLevel int // 0 = none, otherwise heading level
	Paragraph    ParagraphProps
	Run          RunProps
}

// PageSetup is the section geometry in twips.
type PageSetup struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
}

// UniformMargins returns a page setup with the same margin on every side.
func UniformMargins(width, height, margin int) PageSetup {
	return PageSetup{
		Width:        width,
		Height:       height,
		MarginTop:    margin,
		MarginRight:  margin,
		MarginBottom: margin,
		MarginLeft:   margin,
	}
}

// Properties is package metadata written to docProps/core.xml.
type Properties struct {
	Title   string
	Creator string
}

// Document is an in-memory word-processing document.
type Document struct {
	Font       string
	Page       PageSetup
	Properties Properties

	styles []StyleDef
	body   []Paragraph
	footer []Paragraph
}

// New creates an empty Letter-sized document with 1-inch margins.
func New() *Document {
	return &Document{
		Font: "Calibri",
		Page: UniformMargins(12240, 15840, 1440),
	}
}

// AddStyle registers a paragraph style. Later definitions with the same ID
// replace earlier ones.
func (d *Document) AddStyle(def StyleDef) {
	for i := range d.styles {
		if d.styles[i].ID == def.ID {
			d.styles[i] = def
			return
		}
	}
	d.styles = append(d.styles, def)
}

// Styles returns the registered styles in registration order.
func (d *Document) Styles() []StyleDef {
	return append([]StyleDef(nil), d.styles...)
}

// AddParagraph appends a paragraph to the body.
func (d *Document) AddParagraph(p Paragraph) {
	d.body = append(d.body, p)
}

// AddFooterParagraph appends a paragraph to the default footer.
func (d *Document) AddFooterParagraph(p Paragraph) {
	d.footer = append(d.footer, p)
}

// Paragraphs returns the body paragraphs in document order.
func (d *Document) Paragraphs() []Paragraph {
	return append([]Paragraph(nil), d.body...)
}

// Footer returns the footer paragraphs.
func (d *Document) Footer() []Paragraph {
	return append([]Paragraph(nil), d.footer...)
}

// Bytes serializes the document into a .docx package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) validate() error {
	if d.Page.Width <= 0 || d.Page.Height <= 0 {
		return fmt.Errorf("invalid page size %dx%d", d.Page.Width, d.Page.Height)
	}
	for _, p := range append(d.Paragraphs(), d.footer...) {
		if p.Style != "" && !d.hasStyle(p.Style) {
			return fmt.Errorf("paragraph references undefined style %q", p.Style)
		}
	}
	return nil
}

func (d *Document) hasStyle(id string) bool {
	for _, s := range d.styles {
		if s.ID == id {
			return true
		}
	}
	return false
}
