package llm

import (
	"fmt"

	models "docxgen/internal/domain/models/document"
)

const baseSystemPrompt = "You generate polished, structured business documents."

const markdownInstructions = `

Write the document using only this line markup:
# Document title (first line, exactly once)
## Section heading
### Sub-heading
- Bullet item
Any other non-empty line is a paragraph. Separate blocks with a blank line.
Do not use bold, italics, numbered lists, tables or code fences.`

const jsonInstructions = `

Respond with a single JSON object and nothing else, in this shape:
{"title": "Document title", "sections": [{"heading": "Section heading", "content": "Paragraph text"}, {"heading": "Section heading", "bullets": ["Item", "Item"]}]}
Every section has a heading and exactly one of "content" or "bullets", never both.`

const userPromptTemplate = `
You are a professional writing assistant. Take the following raw text and transform it into a polished, structured document with headings, bullet points (if needed), and clean formatting.

Text:
"""%s"""
`

// SystemPrompt returns the fixed instruction for a structure.
func SystemPrompt(structure models.Structure) string {
	switch structure {
	case models.StructureJSON:
		return baseSystemPrompt + jsonInstructions
	case models.StructurePlain:
		return baseSystemPrompt
	default:
		return baseSystemPrompt + markdownInstructions
	}
}

// UserPrompt wraps the raw text in the writing-assistant request.
func UserPrompt(text string) string {
	return fmt.Sprintf(userPromptTemplate, text)
}
