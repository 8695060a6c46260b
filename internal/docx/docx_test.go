package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := New()
	doc.Properties = Properties{Title: "Quarterly Report", Creator: "docxgen"}
	doc.AddStyle(StyleDef{ID: "Normal", Name: "Normal", Default: true, Run: RunProps{Size: 22}})
	doc.AddStyle(StyleDef{
		ID:        "Title",
		Name:      "Title",
		BasedOn:   "Normal",
		Paragraph: ParagraphProps{Align: AlignCenter, SpaceAfter: 120},
		Run:       RunProps{Bold: true, Size: 48, Color: "1F3864"},
	})
	doc.AddStyle(StyleDef{ID: "Heading1", Name: "heading 1", BasedOn: "Normal", OutlineLevel: 1})
	doc.AddStyle(StyleDef{ID: "ListBullet", Name: "List Bullet", BasedOn: "Normal"})
	doc.AddStyle(StyleDef{ID: "Footer", Name: "footer", BasedOn: "Normal"})

	doc.AddParagraph(Paragraph{
		Style: "Title",
		Props: ParagraphProps{Align: AlignCenter},
		Runs:  []Run{{Text: "Quarterly Report", Props: RunProps{Bold: true, Size: 48, Color: "1f3864"}}},
	})
	doc.AddParagraph(Paragraph{})
	doc.AddParagraph(Paragraph{Style: "Heading1", Runs: []Run{{Text: "Summary"}}})
	doc.AddParagraph(Paragraph{Style: "ListBullet", Bullet: true, Runs: []Run{{Text: "Revenue up"}}})
	doc.AddParagraph(Paragraph{Style: "Normal", Runs: []Run{{Text: "  leading and trailing  "}}})
	doc.AddFooterParagraph(Paragraph{
		Style: "Footer",
		Props: ParagraphProps{Align: AlignCenter},
		Runs:  []Run{{Field: FieldPage}},
	})
	return doc
}

func partNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func readPartString(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestDocument_PartsInFixedOrder(t *testing.T) {
	data, err := sampleDocument().Bytes()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
		"word/footer1.xml",
	}, partNames(t, data))
}

func TestDocument_Deterministic(t *testing.T) {
	first, err := sampleDocument().Bytes()
	require.NoError(t, err)
	second, err := sampleDocument().Bytes()
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "identical documents must serialize to identical bytes")
}

func TestDocument_WriteToReportsLength(t *testing.T) {
	var buf bytes.Buffer
	n, err := sampleDocument().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
}

func TestDocument_SectionMargins(t *testing.T) {
	data, err := sampleDocument().Bytes()
	require.NoError(t, err)

	body := readPartString(t, data, "word/document.xml")
	assert.Contains(t, body, `<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"`)
	assert.Contains(t, body, `<w:footerReference w:type="default" r:id="rId3">`)
}

func TestDocument_FooterPageField(t *testing.T) {
	data, err := sampleDocument().Bytes()
	require.NoError(t, err)

	footer := readPartString(t, data, "word/footer1.xml")
	begin := strings.Index(footer, `w:fldCharType="begin"`)
	instr := strings.Index(footer, `<w:instrText xml:space="preserve"> PAGE </w:instrText>`)
	sep := strings.Index(footer, `w:fldCharType="separate"`)
	end := strings.Index(footer, `w:fldCharType="end"`)

	require.NotEqual(t, -1, begin)
	require.NotEqual(t, -1, instr)
	require.NotEqual(t, -1, sep)
	require.NotEqual(t, -1, end)
	assert.True(t, begin < instr && instr < sep && sep < end, "field parts out of order")
	assert.Contains(t, footer, `<w:jc w:val="center">`)
}

func TestDocument_PreservesSurroundingSpaces(t *testing.T) {
	data, err := sampleDocument().Bytes()
	require.NoError(t, err)

	body := readPartString(t, data, "word/document.xml")
	assert.Contains(t, body, `<w:t xml:space="preserve">  leading and trailing  </w:t>`)
}

func TestDocument_UndefinedStyle(t *testing.T) {
	doc := New()
	doc.AddParagraph(Paragraph{Style: "Missing", Runs: []Run{{Text: "x"}}})

	_, err := doc.Bytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Missing"`)
}

func TestDocument_InvalidPage(t *testing.T) {
	doc := New()
	doc.Page = PageSetup{}

	_, err := doc.Bytes()
	assert.Error(t, err)
}

func TestDocument_AddStyleReplaces(t *testing.T) {
	doc := New()
	doc.AddStyle(StyleDef{ID: "Normal", Name: "Normal"})
	doc.AddStyle(StyleDef{ID: "Normal", Name: "Body"})

	styles := doc.Styles()
	require.Len(t, styles, 1)
	assert.Equal(t, "Body", styles[0].Name)
}

func TestRead_RoundTrip(t *testing.T) {
	original := sampleDocument()
	data, err := original.Bytes()
	require.NoError(t, err)

	got, err := ReadBytes(data)
	require.NoError(t, err)

	assert.Equal(t, original.Page, got.Page)
	assert.Equal(t, "Calibri", got.Font)
	assert.Equal(t, original.Properties, got.Properties)

	paragraphs := got.Paragraphs()
	require.Len(t, paragraphs, 5)

	title := paragraphs[0]
	assert.Equal(t, "Title", title.Style)
	assert.Equal(t, AlignCenter, title.Props.Align)
	assert.Equal(t, "Quarterly Report", title.Text())
	require.Len(t, title.Runs, 1)
	assert.Equal(t, RunProps{Bold: true, Size: 48, Color: "1F3864"}, title.Runs[0].Props)

	assert.Equal(t, Paragraph{}, paragraphs[1])

	assert.Equal(t, "Heading1", paragraphs[2].Style)
	assert.Equal(t, "Summary", paragraphs[2].Text())

	assert.True(t, paragraphs[3].Bullet)
	assert.Equal(t, "Revenue up", paragraphs[3].Text())

	assert.Equal(t, "  leading and trailing  ", paragraphs[4].Text())

	footer := got.Footer()
	require.Len(t, footer, 1)
	require.Len(t, footer[0].Runs, 1)
	assert.Equal(t, FieldPage, footer[0].Runs[0].Field)
	assert.Equal(t, "1", footer[0].Runs[0].Text)
	assert.Equal(t, "", footer[0].Text())

	styles := got.Styles()
	require.Len(t, styles, 5)
	assert.Equal(t, "Title", styles[1].ID)
	assert.Equal(t, AlignCenter, styles[1].Paragraph.Align)
	assert.Equal(t, 48, styles[1].Run.Size)
	assert.Equal(t, 1, styles[2].OutlineLevel)
	assert.True(t, styles[0].Default)
}

func TestRead_EmptyFooter(t *testing.T) {
	doc := New()
	data, err := doc.Bytes()
	require.NoError(t, err)

	got, err := ReadBytes(data)
	require.NoError(t, err)
	assert.Empty(t, got.Footer())
	assert.Empty(t, got.Paragraphs())
}

func TestRead_NotWordDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("hello.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ReadBytes(buf.Bytes())
	assert.ErrorIs(t, err, ErrNotWordDocument)
}

func TestRead_NotZip(t *testing.T) {
	_, err := ReadBytes([]byte("plain text"))
	assert.Error(t, err)
}
