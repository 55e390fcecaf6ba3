package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls a remote simulate endpoint that wraps the LLM. It is the
// only network-facing piece of the simulation core; its failures leave the
// session's engine state untouched and resumable.
type Client struct {
	url        string
	authToken  string
	httpClient *http.Client
}

// NewClient returns a client for the given simulate endpoint. token may be
// empty for unauthenticated deployments.
func NewClient(url, token string) *Client {
	return &Client{
		url:       url,
		authToken: token,
		httpClient: &http.Client{
			Timeout: 90 * time.Second, // LLM turns are slow
		},
	}
}

type simulateRequest struct {
	Messages []Message `json:"messages"`
}

type simulateError struct {
	Error string `json:"error"`
}

// Simulate posts the conversation and decodes the generator's turn.
func (c *Client) Simulate(ctx context.Context, messages []Message) (TurnState, error) {
	body, err := json.Marshal(simulateRequest{Messages: messages})
	if err != nil {
		return TurnState{}, fmt.Errorf("encoding simulate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return TurnState{}, fmt.Errorf("building simulate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TurnState{}, fmt.Errorf("calling simulate endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := decodeBody(resp)
	if err != nil {
		return TurnState{}, err
	}
	return raw, nil
}

func decodeBody(resp *http.Response) (TurnState, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return TurnState{}, fmt.Errorf("reading simulate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr simulateError
		if json.Unmarshal(buf.Bytes(), &apiErr) == nil && apiErr.Error != "" {
			return TurnState{}, fmt.Errorf("simulate endpoint: %s", apiErr.Error)
		}
		return TurnState{}, fmt.Errorf("simulate endpoint returned status %d", resp.StatusCode)
	}

	// Some deployments return 200 with an error payload.
	var apiErr simulateError
	if json.Unmarshal(buf.Bytes(), &apiErr) == nil && apiErr.Error != "" {
		return TurnState{}, fmt.Errorf("simulate endpoint: %s", apiErr.Error)
	}

	var state TurnState
	if err := json.Unmarshal(buf.Bytes(), &state); err != nil {
		return TurnState{}, fmt.Errorf("decoding simulate response: %w", err)
	}
	return state, nil
}
