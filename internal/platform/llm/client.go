package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"leetdeck/internal/domain/model"
)

// ErrMissingContent is returned when the completion API answers with a
// well-formed response that carries no usable message content.
var ErrMissingContent = errors.New("llm returned no content")

// Client is the seam between the submission pipeline and the hosted
// completion API. Both operations are stateless and make exactly one
// outbound call; failures are not retried here.
type Client interface {
	// ExtractSolution splits a free-form solution write-up into a prose
	// explanation and the final code, via a schema-constrained completion.
	ExtractSolution(ctx context.Context, text string) (model.StructuredSolution, error)
	// ReformatProblem rewrites a problem statement as markdown. The
	// result may be empty if the API returns no content; callers must
	// tolerate that.
	ReformatProblem(ctx context.Context, text string) (string, error)
}

const extractPrompt = `You will be given a write-up of a solution to a coding problem. ` +
	`Split it into two parts: a clear prose explanation of the approach, and the final code. ` +
	`Keep the wording of the explanation close to the original. ` +
	`Do not add commentary of your own and do not wrap the code in markdown fences.`

const reformatPrompt = `You will be given the description of a coding problem. ` +
	`Reformat it as markdown without changing the wording. ` +
	`Separate the examples and the constraints into their own blocks. ` +
	`Bold the problem title and nothing else.`

// solutionSchema constrains the extraction call to exactly the two
// fields of model.StructuredSolution.
const solutionSchema = `{
	"type": "object",
	"properties": {
		"solutionExplanation": {"type": "string"},
		"code": {"type": "string"}
	},
	"required": ["solutionExplanation", "code"],
	"additionalProperties": false
}`

type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type jsonSchemaFormat struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type responseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *jsonSchemaFormat `json:"json_schema,omitempty"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

func (c *OpenAIClient) ExtractSolution(ctx context.Context, text string) (model.StructuredSolution, error) {
	var solution model.StructuredSolution

	content, err := c.complete(ctx, extractPrompt, text, &responseFormat{
		Type: "json_schema",
		JSONSchema: &jsonSchemaFormat{
			Name:   "structured_solution",
			Strict: true,
			Schema: json.RawMessage(solutionSchema),
		},
	})
	if err != nil {
		return solution, err
	}
	if content == "" {
		return solution, ErrMissingContent
	}

	if err := json.Unmarshal([]byte(content), &solution); err != nil {
		return solution, fmt.Errorf("parse structured solution: %w", err)
	}
	if solution.Explanation == "" || solution.Code == "" {
		return solution, fmt.Errorf("parse structured solution: missing required fields")
	}

	return solution, nil
}

func (c *OpenAIClient) ReformatProblem(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, reformatPrompt, text, nil)
}

// complete performs a single chat completion and returns the content of
// the first choice. An empty response is returned as "" with a nil
// error; callers that need content check for it themselves.
func (c *OpenAIClient) complete(ctx context.Context, instruction, text string, format *responseFormat) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: instruction},
			{Role: "user", Content: text},
		},
		ResponseFormat: format,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API error (status %d): %s", resp.StatusCode, string(body))
	}

	var res chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", nil
	}
	return res.Choices[0].Message.Content, nil
}
