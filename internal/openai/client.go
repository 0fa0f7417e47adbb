package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hauran/git-ai/internal/provider"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 60 * time.Second
)

// Client talks to any OpenAI-compatible chat-completions endpoint.
type Client struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
		APIKey: strings.TrimSpace(apiKey),
	}
}

// Complete sends one chat-completion request and returns the generated
// text. No retries are performed.
func (c *Client) Complete(req provider.Request) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", c.BaseURL)

	reqBody := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", provider.ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", provider.ErrRequestFailed, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	c.attachAuth(httpReq)

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", provider.ErrRequestFailed, resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", provider.ErrRequestFailed, err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: provider returned no content", provider.ErrRequestFailed)
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (c *Client) ListModels() ([]provider.Model, error) {
	url := fmt.Sprintf("%s/models", c.BaseURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.attachAuth(req)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var modelsResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	models := make([]provider.Model, 0, len(modelsResp.Data))
	for _, m := range modelsResp.Data {
		models = append(models, provider.Model{Name: m.ID})
	}

	return models, nil
}

func (c *Client) CheckConnection() error {
	url := fmt.Sprintf("%s/models", c.BaseURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.attachAuth(req)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to API server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) attachAuth(req *http.Request) {
	if c.APIKey == "" {
		return
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
}
