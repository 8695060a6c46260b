package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
)

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Block
	}{
		{
			name: "full document",
			text: "# Quarterly Report\n## Summary\n- Revenue up\n- Costs down\n\nAll good.",
			want: []models.Block{
				models.Title("Quarterly Report"),
				models.Heading(1, "Summary"),
				models.Bullet("Revenue up"),
				models.Bullet("Costs down"),
				models.Spacer(),
				models.Paragraph("All good."),
			},
		},
		{
			name: "no title when first line is not a title",
			text: "Intro line\n# Not a title",
			want: []models.Block{
				models.Paragraph("Intro line"),
				models.Paragraph("# Not a title"),
			},
		},
		{
			name: "title text trimmed",
			text: "#    Spaced Title   ",
			want: []models.Block{models.Title("Spaced Title")},
		},
		{
			name: "only first title counts",
			text: "# One\n# Two",
			want: []models.Block{models.Title("One"), models.Paragraph("# Two")},
		},
		{
			name: "level two heading not misread",
			text: "### Details",
			want: []models.Block{models.Heading(2, "Details")},
		},
		{
			name: "first line heading is not a title",
			text: "## Overview",
			want: []models.Block{models.Heading(1, "Overview")},
		},
		{
			name: "deep headings fall through to paragraph",
			text: "#### Deep\n##### Deeper",
			want: []models.Block{models.Paragraph("#### Deep"), models.Paragraph("##### Deeper")},
		},
		{
			name: "whitespace-only line is a spacer",
			text: "a\n   \t \nb",
			want: []models.Block{models.Paragraph("a"), models.Spacer(), models.Paragraph("b")},
		},
		{
			name: "indented markers are recognised after trimming",
			text: "  - item\n   ## Head",
			want: []models.Block{models.Bullet("item"), models.Heading(1, "Head")},
		},
		{
			name: "dash without space is a paragraph",
			text: "-not a bullet",
			want: []models.Block{models.Paragraph("-not a bullet")},
		},
		{
			name: "crlf line endings",
			text: "# Title\r\n## Head\r\n- item\r\n",
			want: []models.Block{
				models.Title("Title"),
				models.Heading(1, "Head"),
				models.Bullet("item"),
				models.Spacer(),
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMarkup(tt.text))
		})
	}
}

func TestParseMarkup_ExactlyOneTitle(t *testing.T) {
	text := "# Report\n# Again\n## Head\n# Third"
	blocks := ParseMarkup(text)

	titles := 0
	for _, b := range blocks {
		if b.Kind == models.BlockTitle {
			titles++
		}
	}
	assert.Equal(t, 1, titles)
	assert.Equal(t, "Report", blocks[0].Text)
}

func TestParseMarkup_BulletOrderPreserved(t *testing.T) {
	items := []string{"first", "second", "third", "fourth"}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}

	var got []string
	for _, b := range ParseMarkup(sb.String()) {
		if b.Kind == models.BlockBullet {
			got = append(got, b.Text)
		}
	}
	assert.Equal(t, items, got)
}

func TestLineRules_LongestPrefixFirst(t *testing.T) {
	for i := 1; i < len(lineRules); i++ {
		if len(lineRules[i].prefix) > len(lineRules[i-1].prefix) {
			t.Errorf("rule %q checked after shorter rule %q", lineRules[i].prefix, lineRules[i-1].prefix)
		}
	}
}

func TestParsePlain(t *testing.T) {
	got := ParsePlain("First line\n\n  Second line  \r\n")

	assert.Equal(t, []models.Block{
		models.Title(PlainTitle),
		models.Paragraph(PlainSubtitle),
		models.Paragraph("First line"),
		models.Paragraph("Second line"),
	}, got)
}

func TestParse_Dispatch(t *testing.T) {
	blocks, err := Parse("", "# T")
	require.NoError(t, err)
	assert.Equal(t, []models.Block{models.Title("T")}, blocks)

	blocks, err = Parse(models.StructureJSON, `{"title":"T","sections":[]}`)
	require.NoError(t, err)
	assert.Equal(t, []models.Block{models.Title("T")}, blocks)

	blocks, err = Parse(models.StructurePlain, "x")
	require.NoError(t, err)
	assert.Len(t, blocks, 3)

	_, err = Parse("yaml", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestParseMarkup_TitleLineNormalised(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Block
	}{
		{
			name: "indented title",
			text: "  # Title\nBody",
			want: []models.Block{models.Title("Title"), models.Paragraph("Body")},
		},
		{
			name: "byte order mark",
			text: "\uFEFF# Title\r\nBody",
			want: []models.Block{models.Title("Title"), models.Paragraph("Body")},
		},
		{
			name: "indented heading on first line",
			text: "\t## Section\n- item",
			want: []models.Block{models.Heading(1, "Section"), models.Bullet("item")},
		},
		{
			name: "bom without title",
			text: "\uFEFFPlain start",
			want: []models.Block{models.Paragraph("Plain start")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMarkup(tt.text))
		})
	}
}
