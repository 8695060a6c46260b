package document

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docxgen/internal/docx"
	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	"docxgen/internal/style"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	spec, err := style.Default()
	require.NoError(t, err)
	return NewRenderer(spec)
}

func TestRenderer_BlockMapping(t *testing.T) {
	r := newTestRenderer(t)
	blocks := []models.Block{
		models.Title("Report"),
		models.Heading(1, "Summary"),
		models.Heading(2, "Detail"),
		models.Bullet("A"),
		models.Paragraph("Body"),
		models.Spacer(),
	}

	doc, err := r.Render(blocks)
	require.NoError(t, err)

	paragraphs := doc.Paragraphs()
	require.Len(t, paragraphs, 7)

	assert.Equal(t, StyleTitle, paragraphs[0].Style)
	assert.Equal(t, docx.AlignCenter, paragraphs[0].Props.Align)
	assert.Equal(t, "Report", paragraphs[0].Text())
	assert.Equal(t, docx.RunProps{Bold: true, Size: 48, Color: "1F3864"}, paragraphs[0].Runs[0].Props)

	// Spacer inserted after the title
	assert.Equal(t, docx.Paragraph{}, paragraphs[1])

	assert.Equal(t, StyleHeading1, paragraphs[2].Style)
	assert.Equal(t, "2E74B5", paragraphs[2].Runs[0].Props.Color)
	assert.Equal(t, StyleHeading2, paragraphs[3].Style)
	assert.Equal(t, "5B9BD5", paragraphs[3].Runs[0].Props.Color)

	assert.Equal(t, StyleListBullet, paragraphs[4].Style)
	assert.True(t, paragraphs[4].Bullet)
	assert.Equal(t, "A", paragraphs[4].Text())

	assert.Equal(t, StyleNormal, paragraphs[5].Style)
	assert.Equal(t, 22, paragraphs[5].Runs[0].Props.Size)

	assert.Empty(t, paragraphs[6].Runs, "spacer must have no run")
}

func TestRenderer_PageSetupAndFooter(t *testing.T) {
	doc, err := newTestRenderer(t).Render([]models.Block{models.Paragraph("x")})
	require.NoError(t, err)

	assert.Equal(t, 1440, doc.Page.MarginTop)
	assert.Equal(t, 1440, doc.Page.MarginRight)
	assert.Equal(t, 1440, doc.Page.MarginBottom)
	assert.Equal(t, 1440, doc.Page.MarginLeft)

	footer := doc.Footer()
	require.Len(t, footer, 1)
	assert.Equal(t, docx.AlignCenter, footer[0].Props.Align)
	require.Len(t, footer[0].Runs, 1)
	assert.Equal(t, docx.FieldPage, footer[0].Runs[0].Field)
	assert.Empty(t, footer[0].Text(), "page number must be a field, not literal text")
}

func TestRenderer_Properties(t *testing.T) {
	doc, err := newTestRenderer(t).Render([]models.Block{models.Title("Named"), models.Paragraph("x")})
	require.NoError(t, err)
	assert.Equal(t, docx.Properties{Title: "Named", Creator: Creator}, doc.Properties)
}

// Title, Heading(1), two bullets and a paragraph read back in the same order.
func TestRenderer_RoundTrip(t *testing.T) {
	r := newTestRenderer(t)
	blocks := []models.Block{
		models.Title("T"),
		models.Heading(1, "H"),
		models.Bullet("A"),
		models.Bullet("B"),
		models.Paragraph("done"),
	}

	data, err := r.RenderBytes(blocks)
	require.NoError(t, err)

	doc, err := docx.ReadBytes(data)
	require.NoError(t, err)

	var got []models.Block
	for _, p := range doc.Paragraphs() {
		switch p.Style {
		case StyleTitle:
			got = append(got, models.Title(p.Text()))
		case StyleHeading1:
			got = append(got, models.Heading(1, p.Text()))
		case StyleHeading2:
			got = append(got, models.Heading(2, p.Text()))
		case StyleListBullet:
			got = append(got, models.Bullet(p.Text()))
		case StyleNormal:
			got = append(got, models.Paragraph(p.Text()))
		}
	}
	assert.Equal(t, blocks, got)

	footer := doc.Footer()
	require.Len(t, footer, 1)
	assert.Equal(t, docx.FieldPage, footer[0].Runs[0].Field)
	assert.Equal(t, 1440, doc.Page.MarginLeft)
}

func TestRenderer_Deterministic(t *testing.T) {
	r := newTestRenderer(t)
	blocks := ParseMarkup("# Title\n## Head\n- a\n- b\n\nText")

	first, err := r.RenderBytes(blocks)
	require.NoError(t, err)
	second, err := r.RenderBytes(blocks)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestRenderer_EmptyBlocks(t *testing.T) {
	data, err := newTestRenderer(t).RenderBytes(nil)
	require.NoError(t, err)

	doc, err := docx.ReadBytes(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Paragraphs())
	assert.Len(t, doc.Footer(), 1)
}

func TestRenderer_InvalidBlocks(t *testing.T) {
	tests := []struct {
		name  string
		block models.Block
	}{
		{"unknown kind", models.Block{Kind: "table", Text: "x"}},
		{"heading level three", models.Heading(3, "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestRenderer(t).RenderBytes([]models.Block{tt.block})
			require.Error(t, err)

			var renderErr *domain.RenderError
			assert.True(t, errors.As(err, &renderErr))
			assert.True(t, errors.Is(err, domain.ErrRender))
		})
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		in   style.Alignment
		want string
	}{
		{style.AlignLeft, ""},
		{"", ""},
		{style.AlignCenter, docx.AlignCenter},
		{style.AlignRight, docx.AlignRight},
		{style.AlignJustify, docx.AlignBoth},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, alignment(tt.in))
		})
	}
}
