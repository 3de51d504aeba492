package cardsink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leetdeck/internal/domain/model"
)

// APIError carries the upstream status code and response body of a
// failed card-creation call.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("card sink error (status %d): %s", e.Status, e.Body)
}

// MochiSink creates flashcards through the Mochi cards API.
type MochiSink struct {
	apiKey  string
	baseURL string
	deckID  string
	http    *http.Client
}

func NewMochiSink(apiKey, baseURL, deckID string) *MochiSink {
	if baseURL == "" {
		baseURL = "https://app.mochi.cards/api"
	}
	return &MochiSink{
		apiKey:  apiKey,
		baseURL: baseURL,
		deckID:  deckID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type createCardRequest struct {
	Content  string `json:"content"`
	DeckID   string `json:"deck-id"`
	Archived bool   `json:"archived?"`
}

type createCardResponse struct {
	ID string `json:"id"`
}

func (s *MochiSink) CreateCard(ctx context.Context, problem, explanation, code string) (string, error) {
	reqBody := createCardRequest{
		Content:  model.CardContent(problem, explanation, code),
		DeckID:   s.deckID,
		Archived: false,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal card request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/cards/", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	// Mochi authenticates with the API key as the basic-auth username.
	req.SetBasicAuth(s.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var res createCardResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode card response: %w", err)
	}

	return res.ID, nil
}
