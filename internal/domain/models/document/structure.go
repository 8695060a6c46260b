package document

// Structure names the intermediate representation requested from the model.
type Structure string

const (
	StructureMarkdown Structure = "markdown"
	StructureJSON     Structure = "json"
	// StructurePlain is free text with no markup: every non-empty line
	// becomes a paragraph under a fixed banner.
	StructurePlain Structure = "plain"
)

// Structures lists every known structure, primary first.
var Structures = []Structure{StructureMarkdown, StructureJSON, StructurePlain}

// Valid reports whether s is a known structure.
func (s Structure) Valid() bool {
	for _, known := range Structures {
		if s == known {
			return true
		}
	}
	return false
}

// ParsedDocument is the JSON-schema variant of structured text.
type ParsedDocument struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section holds a heading plus exactly one of Content or Bullets.
type Section struct {
	Heading string   `json:"heading"`
	Content *string  `json:"content,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}
