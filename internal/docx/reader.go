package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotWordDocument is returned when a zip archive has no word/document.xml.
var ErrNotWordDocument = errors.New("word/document.xml not found in archive")

// ReadBytes parses a .docx package held in memory.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data), int64(len(data)))
}

// Read parses a .docx package back into a Document. Body and footer
// paragraphs, page geometry, paragraph styles and core properties are
// recovered; anything else in the package is ignored.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	docFile, ok := files[partDocument]
	if !ok {
		return nil, ErrNotWordDocument
	}

	doc := &Document{}

	body, page, err := readPart(docFile, decodeParagraphs)
	if err != nil {
		return nil, fmt.Errorf("read document.xml: %w", err)
	}
	doc.body = body
	doc.Page = page

	if f, ok := files[partFooter]; ok {
		footer, _, err := readPart(f, decodeParagraphs)
		if err != nil {
			return nil, fmt.Errorf("read footer1.xml: %w", err)
		}
		// Drop the placeholder paragraph written for an empty footer.
		if len(footer) == 1 && len(footer[0].Runs) == 0 && footer[0].Style == "" {
			footer = nil
		}
		doc.footer = footer
	}

	if f, ok := files[partStyles]; ok {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open styles.xml: %w", err)
		}
		font, styles, err := decodeStyles(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read styles.xml: %w", err)
		}
		doc.Font = font
		doc.styles = styles
	}

	if f, ok := files[partCore]; ok {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open core.xml: %w", err)
		}
		var core struct {
			Title   string `xml:"title"`
			Creator string `xml:"creator"`
		}
		err = xml.NewDecoder(rc).Decode(&core)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read core.xml: %w", err)
		}
		doc.Properties = Properties{Title: core.Title, Creator: core.Creator}
	}

	return doc, nil
}

func readPart(f *zip.File, decode func(io.Reader) ([]Paragraph, PageSetup, error)) ([]Paragraph, PageSetup, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, PageSetup{}, err
	}
	defer rc.Close()
	return decode(rc)
}

// decodeParagraphs walks a document or footer part token by token.
func decodeParagraphs(r io.Reader) ([]Paragraph, PageSetup, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []Paragraph
		page       PageSetup
		cur        *Paragraph
		runProps   RunProps
		field      *Run
		inResult   bool
		capture    string
		text       strings.Builder
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, PageSetup{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				cur = &Paragraph{}
			case "pStyle":
				if cur != nil {
					cur.Style = attr(t, "val")
				}
			case "numPr":
				if cur != nil {
					cur.Bullet = true
				}
			case "keepNext":
				if cur != nil {
					cur.Props.KeepNext = true
				}
			case "spacing":
				if cur != nil {
					cur.Props.SpaceBefore = attrInt(t, "before")
					cur.Props.SpaceAfter = attrInt(t, "after")
				}
			case "jc":
				if cur != nil {
					cur.Props.Align = attr(t, "val")
				}
			case "r":
				runProps = RunProps{}
			case "b":
				runProps.Bold = onOff(t)
			case "sz":
				runProps.Size = attrInt(t, "val")
			case "color":
				runProps.Color = attr(t, "val")
			case "fldChar":
				switch attr(t, "fldCharType") {
				case "begin":
					field = &Run{Props: runProps}
					inResult = false
				case "separate":
					inResult = true
				case "end":
					if field != nil && cur != nil {
						cur.Runs = append(cur.Runs, *field)
					}
					field = nil
					inResult = false
				}
			case "t", "instrText":
				capture = t.Name.Local
				text.Reset()
			case "pgSz":
				page.Width = attrInt(t, "w")
				page.Height = attrInt(t, "h")
			case "pgMar":
				page.MarginTop = attrInt(t, "top")
				page.MarginRight = attrInt(t, "right")
				page.MarginBottom = attrInt(t, "bottom")
				page.MarginLeft = attrInt(t, "left")
			}

		case xml.CharData:
			if capture != "" {
				text.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				capture = ""
				switch {
				case field != nil && inResult:
					field.Text += text.String()
				case field == nil && cur != nil:
					cur.Runs = append(cur.Runs, Run{Text: text.String(), Props: runProps})
				}
			case "instrText":
				capture = ""
				if field != nil {
					field.Field = strings.TrimSpace(text.String())
				}
			case "p":
				if cur != nil {
					paragraphs = append(paragraphs, *cur)
					cur = nil
				}
			}
		}
	}

	return paragraphs, page, nil
}

// decodeStyles returns the default font and the paragraph styles.
func decodeStyles(r io.Reader) (string, []StyleDef, error) {
	decoder := xml.NewDecoder(r)

	var (
		font      string
		styles    []StyleDef
		cur       *StyleDef
		inDefault bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "docDefaults":
				inDefault = true
			case "rFonts":
				if inDefault && font == "" {
					font = attr(t, "ascii")
				}
			case "style":
				cur = &StyleDef{ID: attr(t, "styleId"), Default: attr(t, "default") == "1"}
			}
			if cur == nil {
				continue
			}
			switch t.Name.Local {
			case "name":
				cur.Name = attr(t, "val")
			case "basedOn":
				cur.BasedOn = attr(t, "val")
			case "outlineLvl":
				cur.OutlineLevel = attrInt(t, "val") + 1
			case "keepNext":
				cur.Paragraph.KeepNext = true
			case "spacing":
				cur.Paragraph.SpaceBefore = attrInt(t, "before")
				cur.Paragraph.SpaceAfter = attrInt(t, "after")
			case "jc":
				cur.Paragraph.Align = attr(t, "val")
			case "b":
				cur.Run.Bold = onOff(t)
			case "sz":
				cur.Run.Size = attrInt(t, "val")
			case "color":
				cur.Run.Color = attr(t, "val")
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "docDefaults":
				inDefault = false
			case "style":
				if cur != nil {
					styles = append(styles, *cur)
					cur = nil
				}
			}
		}
	}

	return font, styles, nil
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func attrInt(el xml.StartElement, local string) int {
	n, _ := strconv.Atoi(attr(el, local))
	return n
}

// onOff reads a toggle property such as <w:b/> or <w:b w:val="0"/>.
func onOff(el xml.StartElement) bool {
	switch attr(el, "val") {
	case "0", "false", "off":
		return false
	}
	return true
}
