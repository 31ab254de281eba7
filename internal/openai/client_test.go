// SPDX-License-Identifier: AGPL-3.0-or-later
package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(Config{
		APIKey:      "sk-test",
		BaseURL:     srv.URL,
		Model:       "gpt-4-turbo-preview",
		MaxTokens:   1024,
		Temperature: 0.3,
	})
	return c, srv
}

func TestSummarize(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"A fine day of work."}}]}`))
	})
	defer srv.Close()

	out, err := c.Summarize(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "A fine day of work.", out)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4-turbo-preview", gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "summarize this", msg["content"])
}

func TestSummarizeServerError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := c.Summarize(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestSummarizeNoChoices(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	_, err := c.Summarize(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestSummarizeMalformedResponse(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	})
	defer srv.Close()

	_, err := c.Summarize(context.Background(), "prompt")
	require.Error(t, err)
}
