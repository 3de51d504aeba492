package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestExtractSolution_Success(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse(`{"solutionExplanation":"Use a hash map.","code":"def f(): pass"}`)))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL, "gpt-4o-mini")
	solution, err := client.ExtractSolution(context.Background(), "my write-up")
	require.NoError(t, err)

	assert.Equal(t, "Use a hash map.", solution.Explanation)
	assert.Equal(t, "def f(): pass", solution.Code)

	// The extraction call must carry the strict schema constraint.
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	format, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok, "request should include response_format")
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, true, schema["strict"])
}

func TestExtractSolution_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	_, err := client.ExtractSolution(context.Background(), "text")
	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestExtractSolution_MalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("not json at all")))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	_, err := client.ExtractSolution(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse structured solution")
}

func TestExtractSolution_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(`{"solutionExplanation":"only half"}`)))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	_, err := client.ExtractSolution(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
}

func TestExtractSolution_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	_, err := client.ExtractSolution(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestReformatProblem_ReturnsContentVerbatim(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(completionResponse("**Two Sum**\n\nGiven an array...")))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	out, err := client.ReformatProblem(context.Background(), "two sum raw")
	require.NoError(t, err)
	assert.Equal(t, "**Two Sum**\n\nGiven an array...", out)

	// Reformatting is plain text generation, no schema constraint.
	_, hasFormat := gotBody["response_format"]
	assert.False(t, hasFormat)
}

func TestReformatProblem_EmptyContentIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("k", srv.URL, "m")
	out, err := client.ReformatProblem(context.Background(), "text")
	require.NoError(t, err)
	assert.Empty(t, out)
}
