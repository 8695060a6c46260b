package document

// BlockKind identifies the case of a Block.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockHeading   BlockKind = "heading"
	BlockBullet    BlockKind = "bullet"
	BlockParagraph BlockKind = "paragraph"
	BlockSpacer    BlockKind = "spacer"
)

// Block is one unit of structured content in document order.
// Level is only meaningful for headings (1 or 2).
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text,omitempty"`
}

// Title creates a title block.
func Title(text string) Block { return Block{Kind: BlockTitle, Text: text} }

// Heading creates a heading block at the given level.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Bullet creates a bulleted list item.
func Bullet(text string) Block { return Block{Kind: BlockBullet, Text: text} }

// Paragraph creates a body paragraph.
func Paragraph(text string) Block { return Block{Kind: BlockParagraph, Text: text} }

// Spacer creates an empty spacing paragraph.
func Spacer() Block { return Block{Kind: BlockSpacer} }

// TitleText returns the text of the first title block, or "" when the
// sequence has none.
func TitleText(blocks []Block) string {
	for _, b := range blocks {
		if b.Kind == BlockTitle {
			return b.Text
		}
	}
	return ""
}
