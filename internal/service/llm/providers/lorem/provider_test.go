package lorem

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "docxgen/internal/domain/models/document"
	domainllm "docxgen/internal/domain/services/llm"
	"docxgen/internal/service/document"
)

func TestProvider_MarkupOutputParses(t *testing.T) {
	p := NewProvider()
	resp, err := p.GenerateResponse(context.Background(), &domainllm.GenerateRequest{Model: "lorem-fast", Prompt: "x"})
	require.NoError(t, err)

	blocks := document.ParseMarkup(resp.Text)
	require.NotEmpty(t, blocks)
	assert.Equal(t, models.BlockTitle, blocks[0].Kind)

	headings := 0
	for _, b := range blocks {
		if b.Kind == models.BlockHeading {
			headings++
		}
	}
	assert.Equal(t, 3, headings)
	assert.Equal(t, "lorem-fast", resp.Model)
	assert.Positive(t, resp.OutputTokens)
}

func TestProvider_JSONOutputParses(t *testing.T) {
	p := NewProvider()
	resp, err := p.GenerateResponse(context.Background(), &domainllm.GenerateRequest{Model: "lorem-fast", JSONOutput: true})
	require.NoError(t, err)

	blocks, err := document.ParseSchema([]byte(resp.Text))
	require.NoError(t, err)
	assert.Equal(t, models.BlockTitle, blocks[0].Kind)
}

func TestProvider_UnsupportedModel(t *testing.T) {
	_, err := NewProvider().GenerateResponse(context.Background(), &domainllm.GenerateRequest{Model: "gpt-4"})
	assert.Error(t, err)
}

func TestProvider_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().GenerateResponse(ctx, &domainllm.GenerateRequest{Model: "lorem-slow"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProvider_ConcurrentGenerate(t *testing.T) {
	p := NewProvider()

	var wg sync.WaitGroup
	errs := make(chan error, 8*20)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				resp, err := p.GenerateResponse(context.Background(), &domainllm.GenerateRequest{Model: "lorem-fast", Prompt: "x"})
				if err != nil {
					errs <- err
					continue
				}
				if len(document.ParseMarkup(resp.Text)) == 0 {
					errs <- errors.New("empty document")
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
