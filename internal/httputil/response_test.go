package httputil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusBadRequest, "Missing 'text' in request body")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Missing 'text' in request body"}`, rec.Body.String())
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to encode response"}`, rec.Body.String())
}

func TestRespondAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondAttachment(rec, "Report.docx", "application/octet-stream", []byte("PK"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Report.docx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "2", rec.Header().Get("Content-Length"))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestParseJSON(t *testing.T) {
	var dest struct {
		Text string `json:"text"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hello"}`))
	require.NoError(t, ParseJSON(rec, req, &dest))
	assert.Equal(t, "hello", dest.Text)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":`))
	err := ParseJSON(rec, req, &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestContextValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetUserID(req))
	assert.Empty(t, GetRequestID(req))

	req = WithRequestID(WithUserID(req, "user-1"), "req-1")
	assert.Equal(t, "user-1", GetUserID(req))
	assert.Equal(t, "req-1", GetRequestID(req))
}
