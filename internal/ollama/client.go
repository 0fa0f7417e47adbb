package ollama

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hauran/git-ai/internal/provider"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultTimeout = 120 * time.Second
)

// Client talks to a local or remote Ollama server.
type Client struct {
	BaseURL string
	Client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Options  chatOptions   `json:"options"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

type modelsResponse struct {
	Models []provider.Model `json:"models"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Complete sends one chat request and returns the generated text.
func (c *Client) Complete(req provider.Request) (string, error) {
	url := fmt.Sprintf("%s/api/chat", c.BaseURL)

	reqBody := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Options: chatOptions{
			NumPredict:  req.MaxTokens,
			Temperature: req.Temperature,
		},
		Stream: false,
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

	if chatResp.Message.Content == "" {
		return "", fmt.Errorf("%w: provider returned no content", provider.ErrRequestFailed)
	}

	return chatResp.Message.Content, nil
}

func (c *Client) ListModels() ([]provider.Model, error) {
	url := fmt.Sprintf("%s/api/tags", c.BaseURL)

	resp, err := c.Client.Get(url)
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

	return modelsResp.Models, nil
}

func (c *Client) CheckConnection() error {
	url := fmt.Sprintf("%s/api/tags", c.BaseURL)

	resp, err := c.Client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to Ollama server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
