package document

import (
	"encoding/json"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
)

var (
	errSectionEmpty = errors.New("section needs content or bullets")
	errSectionBoth  = errors.New("section cannot have both content and bullets")
)

// ParseSchema decodes the JSON document shape and lays it out as blocks:
// the title, then per section a level-1 heading, its body and a spacer.
// A surrounding Markdown code fence is tolerated.
func ParseSchema(data []byte) ([]models.Block, error) {
	var doc models.ParsedDocument
	if err := json.Unmarshal([]byte(StripCodeFence(string(data))), &doc); err != nil {
		return nil, &domain.MalformedStructureError{Message: "invalid JSON: " + err.Error()}
	}
	if err := validateParsedDocument(&doc); err != nil {
		return nil, &domain.MalformedStructureError{Message: err.Error()}
	}

	blocks := []models.Block{models.Title(doc.Title)}
	for _, section := range doc.Sections {
		blocks = append(blocks, models.Heading(1, section.Heading))
		if section.Content != nil {
			blocks = append(blocks, models.Paragraph(*section.Content))
		} else {
			for _, item := range section.Bullets {
				blocks = append(blocks, models.Bullet(item))
			}
		}
		blocks = append(blocks, models.Spacer())
	}
	return blocks, nil
}

func validateParsedDocument(doc *models.ParsedDocument) error {
	return validation.ValidateStruct(doc,
		validation.Field(&doc.Title, validation.Required),
		validation.Field(&doc.Sections, validation.Each(validation.By(validateSection))),
	)
}

// validateSection enforces a heading plus exactly one body.
func validateSection(value interface{}) error {
	section, ok := value.(models.Section)
	if !ok {
		return errors.New("must be a section")
	}
	if err := validation.ValidateStruct(&section,
		validation.Field(&section.Heading, validation.Required),
	); err != nil {
		return err
	}

	hasContent := section.Content != nil
	hasBullets := len(section.Bullets) > 0
	switch {
	case !hasContent && !hasBullets:
		return errSectionEmpty
	case hasContent && hasBullets:
		return errSectionBoth
	}
	return nil
}

// StripCodeFence removes one surrounding ``` fence (with optional language
// tag) that models like to wrap their output in.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	body, ok := strings.CutSuffix(trimmed, "```")
	if !ok || len(body) < 3 {
		return text
	}
	// Drop the opening fence line including any language tag
	newline := strings.IndexByte(body, '\n')
	if newline < 0 {
		return text
	}
	return strings.TrimSpace(body[newline+1:])
}
