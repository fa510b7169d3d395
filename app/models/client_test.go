package models

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) string {
	return `{"id":"cmpl-1","object":"chat.completion","model":"m",` +
		`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":` +
		mustJSON(content) + `}}],` +
		`"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestDescribeImage(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(completionResponse("A calm bedroom with soft light.")))
	}))
	defer ts.Close()

	gc := NewGroqClient(ts.URL, "test-key", "vision-model", "text-model")
	text, err := gc.DescribeImage(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "A calm bedroom with soft light.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "vision-model", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	assert.Equal(t, "data:image/jpeg;base64,aW1hZ2U=",
		imagePart["image_url"].(map[string]any)["url"])
}

func TestGenerateRecommendations(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(completionResponse(`{"description":"ok"}`)))
	}))
	defer ts.Close()

	gc := NewGroqClient(ts.URL, "test-key", "vision-model", "text-model")
	raw, err := gc.GenerateRecommendations(context.Background(), "a bright room", "Fire")
	require.NoError(t, err)
	assert.Equal(t, `{"description":"ok"}`, raw)
	assert.Equal(t, "text-model", gotBody["model"])
	assert.Equal(t, "json_object", gotBody["response_format"].(map[string]any)["type"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)["content"].(string)
	assert.Contains(t, system, "element is Fire")
	user := messages[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "a bright room")
}

func TestDescribeImageServerError(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	gc := NewGroqClient(ts.URL, "test-key", "vision-model", "text-model")
	_, err := gc.DescribeImage(context.Background(), "aW1hZ2U=")
	require.Error(t, err)
	assert.Equal(t, maxRetries, calls)
}

func TestDescribeImageEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	gc := NewGroqClient(ts.URL, "test-key", "vision-model", "text-model")
	_, err := gc.DescribeImage(context.Background(), "aW1hZ2U=")
	require.Error(t, err)
}

func TestDescribeImageCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gc := NewGroqClient("http://localhost:1", "test-key", "vision-model", "text-model")
	_, err := gc.DescribeImage(ctx, "aW1hZ2U=")
	require.Error(t, err)
}
