package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// WordprocessingML element trees. Tag names carry the "w:" prefix directly
// so the output matches what word processors write.

const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC = "http://purl.org/dc/elements/1.1/"
)

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlEmpty struct{}

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     xmlSectPr      `xml:"w:sectPr"`
}

type xmlFooter struct {
	XMLName    xml.Name       `xml:"w:ftr"`
	XmlnsW     string         `xml:"xmlns:w,attr"`
	XmlnsR     string         `xml:"xmlns:r,attr"`
	Paragraphs []xmlParagraph `xml:"w:p"`
}

type xmlSectPr struct {
	FooterRef *xmlHeaderFooterRef `xml:"w:footerReference,omitempty"`
	PgSz      xmlPgSz             `xml:"w:pgSz"`
	PgMar     xmlPgMar            `xml:"w:pgMar"`
}

type xmlHeaderFooterRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xmlPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xmlParagraph struct {
	PPr  *xmlPPr  `xml:"w:pPr,omitempty"`
	Runs []xmlRun `xml:"w:r"`
}

// Child order follows CT_PPr: pStyle, keepNext, numPr, spacing, jc, outlineLvl.
type xmlPPr struct {
	PStyle   *xmlVal     `xml:"w:pStyle,omitempty"`
	KeepNext *xmlEmpty   `xml:"w:keepNext,omitempty"`
	NumPr    *xmlNumPr   `xml:"w:numPr,omitempty"`
	Spacing  *xmlSpacing `xml:"w:spacing,omitempty"`
	Jc       *xmlVal     `xml:"w:jc,omitempty"`
	Outline  *xmlVal     `xml:"w:outlineLvl,omitempty"`
}

type xmlNumPr struct {
	Ilvl  xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlSpacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type xmlRun struct {
	RPr       *xmlRPr     `xml:"w:rPr,omitempty"`
	FldChar   *xmlFldChar `xml:"w:fldChar,omitempty"`
	InstrText *xmlText    `xml:"w:instrText,omitempty"`
	Text      *xmlText    `xml:"w:t,omitempty"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xmlFldChar struct {
	Type string `xml:"w:fldCharType,attr"`
}

// Child order follows CT_RPr: rFonts, b, color, sz, szCs.
type xmlRPr struct {
	Fonts  *xmlFonts `xml:"w:rFonts,omitempty"`
	Bold   *xmlEmpty `xml:"w:b,omitempty"`
	Color  *xmlVal   `xml:"w:color,omitempty"`
	Size   *xmlVal   `xml:"w:sz,omitempty"`
	SizeCs *xmlVal   `xml:"w:szCs,omitempty"`
}

type xmlFonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
	CS       string `xml:"w:cs,attr"`
}

type xmlStyles struct {
	XMLName     xml.Name       `xml:"w:styles"`
	XmlnsW      string         `xml:"xmlns:w,attr"`
	DocDefaults xmlDocDefaults `xml:"w:docDefaults"`
	Styles      []xmlStyle     `xml:"w:style"`
}

type xmlDocDefaults struct {
	RPrDefault struct {
		RPr xmlRPr `xml:"w:rPr"`
	} `xml:"w:rPrDefault"`
}

type xmlStyle struct {
	Type    string    `xml:"w:type,attr"`
	Default string    `xml:"w:default,attr,omitempty"`
	StyleID string    `xml:"w:styleId,attr"`
	Name    xmlVal    `xml:"w:name"`
	BasedOn *xmlVal   `xml:"w:basedOn,omitempty"`
	Next    *xmlVal   `xml:"w:next,omitempty"`
	QFormat *xmlEmpty `xml:"w:qFormat,omitempty"`
	PPr     *xmlPPr   `xml:"w:pPr,omitempty"`
	RPr     *xmlRPr   `xml:"w:rPr,omitempty"`
}

type xmlCoreProperties struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCP string   `xml:"xmlns:cp,attr"`
	XmlnsDC string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator,omitempty"`
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(data))
	out = append(out, xml.Header...)
	return append(out, data...), nil
}

func toXMLParagraph(p Paragraph, bulletNumID int) xmlParagraph {
	var xp xmlParagraph
	ppr := toXMLPPr(p.Props)
	if p.Style != "" {
		ppr.PStyle = &xmlVal{Val: p.Style}
	}
	if p.Bullet {
		ppr.NumPr = &xmlNumPr{Ilvl: xmlVal{Val: "0"}, NumID: xmlVal{Val: strconv.Itoa(bulletNumID)}}
	}
	if ppr != (xmlPPr{}) {
		xp.PPr = &ppr
	}
	for _, r := range p.Runs {
		xp.Runs = append(xp.Runs, toXMLRuns(r)...)
	}
	return xp
}

func toXMLPPr(props ParagraphProps) xmlPPr {
	var ppr xmlPPr
	if props.KeepNext {
		ppr.KeepNext = &xmlEmpty{}
	}
	if props.SpaceBefore != 0 || props.SpaceAfter != 0 {
		ppr.Spacing = &xmlSpacing{Before: props.SpaceBefore, After: props.SpaceAfter}
	}
	if props.Align != "" {
		ppr.Jc = &xmlVal{Val: props.Align}
	}
	return ppr
}

func toXMLRPr(props RunProps, font string) *xmlRPr {
	var rpr xmlRPr
	if font != "" {
		rpr.Fonts = &xmlFonts{ASCII: font, HAnsi: font, EastAsia: font, CS: font}
	}
	if props.Bold {
		rpr.Bold = &xmlEmpty{}
	}
	if props.Color != "" {
		rpr.Color = &xmlVal{Val: strings.ToUpper(props.Color)}
	}
	if props.Size > 0 {
		size := strconv.Itoa(props.Size)
		rpr.Size = &xmlVal{Val: size}
		rpr.SizeCs = &xmlVal{Val: size}
	}
	if rpr == (xmlRPr{}) {
		return nil
	}
	return &rpr
}

// toXMLRuns expands a field run into the begin/instr/separate/result/end
// sequence of a complex field.
func toXMLRuns(r Run) []xmlRun {
	rpr := toXMLRPr(r.Props, "")
	if r.Field == "" {
		return []xmlRun{{RPr: rpr, Text: newText(r.Text)}}
	}
	cached := r.Text
	if cached == "" {
		cached = "1"
	}
	return []xmlRun{
		{RPr: rpr, FldChar: &xmlFldChar{Type: "begin"}},
		{RPr: rpr, InstrText: &xmlText{Space: "preserve", Value: " " + r.Field + " "}},
		{RPr: rpr, FldChar: &xmlFldChar{Type: "separate"}},
		{RPr: rpr, Text: newText(cached)},
		{RPr: rpr, FldChar: &xmlFldChar{Type: "end"}},
	}
}

func newText(s string) *xmlText {
	t := &xmlText{Value: s}
	if s != strings.TrimSpace(s) {
		t.Space = "preserve"
	}
	return t
}

func toXMLStyle(def StyleDef) xmlStyle {
	style := xmlStyle{
		Type:    "paragraph",
		StyleID: def.ID,
		Name:    xmlVal{Val: def.Name},
		QFormat: &xmlEmpty{},
		RPr:     toXMLRPr(def.Run, ""),
	}
	if def.Default {
		style.Default = "1"
	}
	if def.BasedOn != "" {
		style.BasedOn = &xmlVal{Val: def.BasedOn}
		style.Next = &xmlVal{Val: def.BasedOn}
	}
	ppr := toXMLPPr(def.Paragraph)
	if def.OutlineLevel > 0 {
		ppr.Outline = &xmlVal{Val: strconv.Itoa(def.OutlineLevel - 1)}
	}
	if ppr != (xmlPPr{}) {
		style.PPr = &ppr
	}
	return style
}
