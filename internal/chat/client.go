package chat

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

const systemPrompt = `You are the official AI assistant for Medinauts.
Medinauts is a heart disease prediction application.
Your goal is to assist users with heart health queries and explain how the prediction model works.
Keep your answers helpful, medical, but concise. Always refer to Medinauts as 'we' or 'our platform'.`

// Completer produces an assistant reply for a user message.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: os.Getenv("LLM_BASE_URL"),
		apiKey:  os.Getenv("LLM_API_KEY"),
		model:   os.Getenv("AI_MODEL"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	if c.baseURL == "" {
		return "", errors.New("missing LLM_BASE_URL")
	}
	if c.model == "" {
		return "", errors.New("missing AI_MODEL")
	}

	payload, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": message},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm api error: %s", string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty llm response")
	}

	return result.Choices[0].Message.Content, nil
}
