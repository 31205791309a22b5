package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Classifier is the black-box heart disease model.
type Classifier interface {
	Predict(ctx context.Context, features []float64) (*Result, error)
}

// ModelClient talks to the hosted model server over HTTP.
type ModelClient struct {
	baseURL string
	client  *http.Client
}

func NewModelClient() *ModelClient {
	return &ModelClient{
		baseURL: os.Getenv("MODEL_SERVER_URL"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (m *ModelClient) Predict(ctx context.Context, features []float64) (*Result, error) {
	if m.baseURL == "" {
		return nil, errors.New("missing MODEL_SERVER_URL")
	}

	payload, err := json.Marshal(map[string]any{
		"features": features,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/predict",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model server request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status %d: %s", resp.StatusCode, string(body))
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	return &result, nil
}
