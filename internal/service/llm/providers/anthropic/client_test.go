package anthropic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	domainllm "docxgen/internal/domain/services/llm"
)

func TestNewProvider_RequiresKey(t *testing.T) {
	_, err := NewProvider("")
	assert.Error(t, err)
}

func TestProvider_SupportsModel(t *testing.T) {
	p, err := NewProvider("key")
	require.NoError(t, err)

	assert.True(t, p.SupportsModel("claude-haiku-4-5-20251001"))
	assert.False(t, p.SupportsModel("gpt-4"))
}

func TestProvider_GenerateResponse(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "# Title\n"}, {"type": "text", "text": "- a"}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 12, "output_tokens": 4}
		}`))
	}))
	defer srv.Close()

	p, err := NewProvider("key", option.WithBaseURL(srv.URL))
	require.NoError(t, err)

	resp, err := p.GenerateResponse(context.Background(), &domainllm.GenerateRequest{
		System:      "be structured",
		Prompt:      "raw text",
		Model:       "claude-haiku-4-5",
		MaxTokens:   100,
		Temperature: 0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "# Title\n- a", resp.Text)
	assert.Equal(t, 12, resp.InputTokens)
	assert.Equal(t, 4, resp.OutputTokens)
	assert.Equal(t, "end_turn", resp.StopReason)

	assert.Equal(t, "be structured", gjson.GetBytes(body, "system.0.text").String())
	assert.Equal(t, "raw text", gjson.GetBytes(body, "messages.0.content.0.text").String())
	assert.Equal(t, int64(100), gjson.GetBytes(body, "max_tokens").Int())
	assert.InDelta(t, 0.7, gjson.GetBytes(body, "temperature").Float(), 1e-9)
}

func TestProvider_UnsupportedModel(t *testing.T) {
	p, err := NewProvider("key")
	require.NoError(t, err)

	_, err = p.GenerateResponse(context.Background(), &domainllm.GenerateRequest{Model: "gpt-4"})
	assert.Error(t, err)
}
