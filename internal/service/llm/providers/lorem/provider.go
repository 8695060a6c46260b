package lorem

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"

	models "docxgen/internal/domain/models/document"
	domainllm "docxgen/internal/domain/services/llm"
)

// Provider is a mock LLM provider that generates structured lorem ipsum.
// Used for testing and development without requiring real API keys.
// The golorem generator is not safe for concurrent use, so access is serialised.
type Provider struct {
	mu        sync.Mutex
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-slow"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// GenerateResponse returns a lorem document in the shape the request asks
// for: a JSON object when JSONOutput is set, otherwise line markup.
func (p *Provider) GenerateResponse(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	// Validate model
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by lorem provider", req.Model)
	}

	// Simulate a blocking API call
	select {
	case <-time.After(getDelay(req.Model)):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	doc := p.generateDocument()

	var text string
	if req.JSONOutput {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode lorem document: %w", err)
		}
		text = string(data)
	} else {
		text = renderMarkup(doc)
	}

	return &domainllm.GenerateResponse{
		Text:         text,
		Model:        req.Model,
		InputTokens:  len(strings.Fields(req.System)) + len(strings.Fields(req.Prompt)),
		OutputTokens: len(strings.Fields(text)), // Word count as proxy
		StopReason:   "end_turn",
	}, nil
}

// getDelay returns the simulated latency for a model name.
func getDelay(model string) time.Duration {
	if strings.Contains(model, "slow") {
		return 2 * time.Second
	}
	return 0
}

// generateDocument builds three sections alternating paragraph and bullet bodies.
func (p *Provider) generateDocument() models.ParsedDocument {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc := models.ParsedDocument{
		Title: strings.TrimSuffix(p.generator.Sentence(2, 5), "."),
	}
	for i := 0; i < 3; i++ {
		section := models.Section{
			Heading: strings.TrimSuffix(p.generator.Sentence(1, 4), "."),
		}
		if i%2 == 0 {
			content := p.generator.Paragraph(2, 4)
			section.Content = &content
		} else {
			for j := 0; j < 3; j++ {
				section.Bullets = append(section.Bullets, p.generator.Sentence(3, 8))
			}
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

func renderMarkup(doc models.ParsedDocument) string {
	var sb strings.Builder
	sb.WriteString("# " + doc.Title + "\n")
	for _, section := range doc.Sections {
		sb.WriteString("\n## " + section.Heading + "\n")
		if section.Content != nil {
			sb.WriteString(*section.Content + "\n")
		}
		for _, item := range section.Bullets {
			sb.WriteString("- " + item + "\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
