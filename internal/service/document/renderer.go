package document

import (
	"fmt"

	"docxgen/internal/docx"
	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	"docxgen/internal/style"
)

// Paragraph style IDs written to styles.xml.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleHeading1   = "Heading1"
	StyleHeading2   = "Heading2"
	StyleListBullet = "ListBullet"
	StyleFooter     = "Footer"
)

// Creator is recorded in the package core properties.
const Creator = "docxgen"

// Renderer maps blocks onto a styled document. It holds no per-document
// state and is safe for concurrent use.
type Renderer struct {
	spec *style.Spec
}

// NewRenderer creates a renderer for a fixed style spec.
func NewRenderer(spec *style.Spec) *Renderer {
	return &Renderer{spec: spec}
}

// Render lays out blocks in order. A title is followed by one spacer
// paragraph; the footer carries a centred PAGE field.
func (r *Renderer) Render(blocks []models.Block) (*docx.Document, error) {
	doc := docx.New()
	doc.Font = r.spec.Font
	doc.Page = docx.UniformMargins(r.spec.Page.Width, r.spec.Page.Height, r.spec.Page.Margin)
	doc.Properties = docx.Properties{Title: models.TitleText(blocks), Creator: Creator}

	for _, def := range r.styleDefs() {
		doc.AddStyle(def)
	}

	styles := r.spec.Styles
	for i, block := range blocks {
		switch block.Kind {
		case models.BlockTitle:
			doc.AddParagraph(styledParagraph(StyleTitle, styles.Title, block.Text))
			doc.AddParagraph(docx.Paragraph{})
		case models.BlockHeading:
			switch block.Level {
			case 1:
				doc.AddParagraph(styledParagraph(StyleHeading1, styles.Heading1, block.Text))
			case 2:
				doc.AddParagraph(styledParagraph(StyleHeading2, styles.Heading2, block.Text))
			default:
				return nil, fmt.Errorf("block %d: unsupported heading level %d", i, block.Level)
			}
		case models.BlockBullet:
			p := styledParagraph(StyleListBullet, styles.Bullet, block.Text)
			p.Bullet = true
			doc.AddParagraph(p)
		case models.BlockParagraph:
			doc.AddParagraph(styledParagraph(StyleNormal, styles.Paragraph, block.Text))
		case models.BlockSpacer:
			doc.AddParagraph(docx.Paragraph{})
		default:
			return nil, fmt.Errorf("block %d: unknown kind %q", i, block.Kind)
		}
	}

	doc.AddFooterParagraph(docx.Paragraph{
		Style: StyleFooter,
		Props: docx.ParagraphProps{Align: alignment(styles.Footer.Align)},
		Runs:  []docx.Run{{Field: docx.FieldPage, Props: runProps(styles.Footer)}},
	})

	return doc, nil
}

// RenderBytes renders blocks straight to .docx bytes. Every failure is a
// RenderError.
func (r *Renderer) RenderBytes(blocks []models.Block) ([]byte, error) {
	doc, err := r.Render(blocks)
	if err != nil {
		return nil, &domain.RenderError{Err: err}
	}
	data, err := doc.Bytes()
	if err != nil {
		return nil, &domain.RenderError{Err: err}
	}
	return data, nil
}

func (r *Renderer) styleDefs() []docx.StyleDef {
	styles := r.spec.Styles
	return []docx.StyleDef{
		{ID: StyleNormal, Name: "Normal", Default: true, Paragraph: paragraphProps(styles.Paragraph), Run: runProps(styles.Paragraph)},
		{ID: StyleTitle, Name: "Title", BasedOn: StyleNormal, Paragraph: paragraphProps(styles.Title), Run: runProps(styles.Title)},
		{ID: StyleHeading1, Name: "heading 1", BasedOn: StyleNormal, OutlineLevel: 1, Paragraph: headingProps(styles.Heading1), Run: runProps(styles.Heading1)},
		{ID: StyleHeading2, Name: "heading 2", BasedOn: StyleNormal, OutlineLevel: 2, Paragraph: headingProps(styles.Heading2), Run: runProps(styles.Heading2)},
		{ID: StyleListBullet, Name: "List Bullet", BasedOn: StyleNormal, Paragraph: paragraphProps(styles.Bullet), Run: runProps(styles.Bullet)},
		{ID: StyleFooter, Name: "footer", BasedOn: StyleNormal, Paragraph: paragraphProps(styles.Footer), Run: runProps(styles.Footer)},
	}
}

// styledParagraph references the style and repeats its run formatting
// directly so viewers that ignore styles.xml still show it.
func styledParagraph(styleID string, ts style.TextStyle, text string) docx.Paragraph {
	return docx.Paragraph{
		Style: styleID,
		Props: docx.ParagraphProps{Align: alignment(ts.Align)},
		Runs:  []docx.Run{{Text: text, Props: runProps(ts)}},
	}
}

func paragraphProps(ts style.TextStyle) docx.ParagraphProps {
	return docx.ParagraphProps{
		Align:       alignment(ts.Align),
		SpaceBefore: ts.SpaceBefore,
		SpaceAfter:  ts.SpaceAfter,
	}
}

func headingProps(ts style.TextStyle) docx.ParagraphProps {
	props := paragraphProps(ts)
	props.KeepNext = true
	return props
}

func runProps(ts style.TextStyle) docx.RunProps {
	return docx.RunProps{Bold: ts.Bold, Size: ts.HalfPoints(), Color: ts.Color}
}

// Left is the OOXML default and is left implicit.
func alignment(a style.Alignment) string {
	switch a {
	case style.AlignCenter:
		return docx.AlignCenter
	case style.AlignRight:
		return docx.AlignRight
	case style.AlignJustify:
		return docx.AlignBoth
	default:
		return ""
	}
}
