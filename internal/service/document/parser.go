package document

import (
	"fmt"
	"strings"
	"unicode"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
)

const (
	titlePrefix   = "# "
	byteOrderMark = "\uFEFF"
)

// Banner lines of the plain structure.
const (
	PlainTitle    = "Generated Document"
	PlainSubtitle = "Styled and structured with AI."
)

// lineRule maps a line prefix to the block built from the rest of the line.
type lineRule struct {
	prefix string
	build  func(rest string) models.Block
}

// lineRules is checked in order, longest prefix first, so "### " is never
// read as "## " followed by text. New block kinds are added here.
var lineRules = []lineRule{
	{prefix: "### ", build: func(rest string) models.Block { return models.Heading(2, rest) }},
	{prefix: "## ", build: func(rest string) models.Block { return models.Heading(1, rest) }},
	{prefix: "- ", build: models.Bullet},
}

// Parse dispatches structured text to the parser for its structure.
// An empty structure means markdown.
func Parse(structure models.Structure, text string) ([]models.Block, error) {
	switch structure {
	case models.StructureMarkdown, "":
		return ParseMarkup(text), nil
	case models.StructureJSON:
		return ParseSchema([]byte(text))
	case models.StructurePlain:
		return ParsePlain(text), nil
	default:
		return nil, &domain.InputValidationError{
			Message: fmt.Sprintf("unknown structure %q", structure),
		}
	}
}

// ParseMarkup converts line markup into blocks, one block per line.
// Only the first line can become the title.
func ParseMarkup(text string) []models.Block {
	if text == "" {
		return nil
	}

	lines := splitLines(text)
	blocks := make([]models.Block, 0, len(lines))

	// Leading indentation and a BOM are ignored on the title line, as on every other line.
	first := strings.TrimLeftFunc(strings.TrimPrefix(lines[0], byteOrderMark), unicode.IsSpace)
	if rest, ok := strings.CutPrefix(first, titlePrefix); ok {
		blocks = append(blocks, models.Title(strings.TrimSpace(rest)))
		lines = lines[1:]
	} else {
		lines[0] = first
	}

	for _, line := range lines {
		blocks = append(blocks, classifyLine(strings.TrimSpace(line)))
	}
	return blocks
}

func classifyLine(line string) models.Block {
	if line == "" {
		return models.Spacer()
	}
	for _, rule := range lineRules {
		if rest, ok := strings.CutPrefix(line, rule.prefix); ok {
			return rule.build(rest)
		}
	}
	return models.Paragraph(line)
}

// ParsePlain lays out unmarked text: a fixed banner, then one paragraph per
// non-empty line.
func ParsePlain(text string) []models.Block {
	blocks := []models.Block{
		models.Title(PlainTitle),
		models.Paragraph(PlainSubtitle),
	}
	for _, line := range splitLines(text) {
		if line = strings.TrimSpace(line); line != "" {
			blocks = append(blocks, models.Paragraph(line))
		}
	}
	return blocks
}

// splitLines splits on "\n" and drops a trailing "\r" from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
