package style

// Alignment is a paragraph justification value.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "both"
)

// TextStyle holds the visual attributes of one block kind.
type TextStyle struct {
	Size        float64   `yaml:"size" json:"size"`   // points
	Color       string    `yaml:"color" json:"color"` // RRGGBB
	Align       Alignment `yaml:"align" json:"align"`
	Bold        bool      `yaml:"bold" json:"bold"`
	SpaceBefore int       `yaml:"space_before" json:"space_before"` // twips
	SpaceAfter  int       `yaml:"space_after" json:"space_after"`   // twips
}

// HalfPoints returns the size in the unit OOXML uses for run sizes.
func (t TextStyle) HalfPoints() int {
	return int(t.Size * 2)
}

// PageStyle is the page geometry in twips.
type PageStyle struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	Margin int `yaml:"margin" json:"margin"`
}

// Styles maps each block kind to its text style.
type Styles struct {
	Title     TextStyle `yaml:"title" json:"title"`
	Heading1  TextStyle `yaml:"heading1" json:"heading1"`
	Heading2  TextStyle `yaml:"heading2" json:"heading2"`
	Bullet    TextStyle `yaml:"bullet" json:"bullet"`
	Paragraph TextStyle `yaml:"paragraph" json:"paragraph"`
	Footer    TextStyle `yaml:"footer" json:"footer"`
}

// Spec is the complete, read-only styling configuration.
type Spec struct {
	Font   string    `yaml:"font" json:"font"`
	Page   PageStyle `yaml:"page" json:"page"`
	Styles Styles    `yaml:"styles" json:"styles"`
}
