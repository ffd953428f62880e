package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/config"
)

func newTestLLMService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewLLMService(config.LLMConfig{
		APIKey:      "test-api-key",
		BaseURL:     server.URL,
		Model:       "llama3.1-8b",
		MaxTokens:   800,
		Temperature: 0.8,
		Timeout:     5 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	svc, err := NewLLMService(config.LLMConfig{BaseURL: "http://localhost"}, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestLLMService_Complete(t *testing.T) {
	var received ChatCompletionRequest
	svc := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"TITLE: Toast"}}]}`))
	})

	reply, err := svc.Complete(context.Background(), "make toast")

	require.NoError(t, err)
	assert.Equal(t, "TITLE: Toast", reply)
	assert.Equal(t, "llama3.1-8b", received.Model)
	assert.Equal(t, 800, received.MaxTokens)
	assert.InDelta(t, 0.8, received.Temperature, 0.0001)
	require.Len(t, received.Messages, 1)
	assert.Equal(t, "user", received.Messages[0].Role)
	assert.Equal(t, "make toast", received.Messages[0].Content)
}

func TestLLMService_Complete_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"quota exceeded", http.StatusTooManyRequests, `{"error":"quota"}`, "status 429"},
		{"server error", http.StatusInternalServerError, `oops`, "status 500"},
		{"malformed body", http.StatusOK, `not json`, "failed to parse"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"empty content", http.StatusOK, `{"choices":[{"message":{"content":"  "}}]}`, "empty content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			reply, err := svc.Complete(context.Background(), "prompt")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, reply)
		})
	}
}

func TestLLMService_Complete_Timeout(t *testing.T) {
	svc := newTestLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Complete(ctx, "prompt")
	assert.Error(t, err)
}
