package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/abelbrown/medlens/internal/logging"
)

// OllamaProvider talks to a local Ollama daemon. With no model
// configured it picks the first installed one and caches the choice.
type OllamaProvider struct {
	endpoint string
	client   *http.Client

	mu       sync.Mutex
	model    string
	detected bool
}

func NewOllamaProvider(endpoint, model string) *OllamaProvider {
	if endpoint == "" {
		endpoint = "http://localhost:11434"
	}
	return &OllamaProvider{
		endpoint: endpoint,
		model:    model,
		detected: model != "",
		// Local inference can be slow on first load
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

func (o *OllamaProvider) Available() bool {
	return o.resolveModel() != ""
}

// resolveModel returns the model to use, querying /api/tags once when
// none was configured.
func (o *OllamaProvider) resolveModel() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.detected {
		return o.model
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"/api/tags", nil)
	if err != nil {
		return ""
	}
	resp, err := o.client.Do(req)
	if err != nil {
		logging.Debug("ollama not reachable", "endpoint", o.endpoint, "error", err)
		return ""
	}
	defer resp.Body.Close()

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil || len(tags.Models) == 0 {
		logging.Debug("Ollama not available - no models found", "endpoint", o.endpoint)
		return ""
	}

	o.model = tags.Models[0].Name
	o.detected = true
	logging.Info("ollama model auto-detected", "model", o.model)
	return o.model
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaOptions struct {
	NumPredict int `json:"num_predict,omitempty"`
}

func (o *OllamaProvider) Generate(ctx context.Context, req Request) (Response, error) {
	model := o.resolveModel()
	if model == "" {
		return Response{}, fmt.Errorf("ollama has no models at %s", o.endpoint)
	}

	logging.Debug("Ollama API request starting", "model", model, "endpoint", o.endpoint)

	chat := ollamaChatRequest{Model: model, Stream: false}
	if req.SystemPrompt != "" {
		chat.Messages = append(chat.Messages, ollamaMessage{Role: "system", Content: req.SystemPrompt})
	}
	chat.Messages = append(chat.Messages, ollamaMessage{Role: "user", Content: req.UserPrompt})
	if req.MaxTokens > 0 {
		chat.Options = &ollamaOptions{NumPredict: req.MaxTokens}
	}

	raw, err := postJSON(ctx, o.client, o.endpoint+"/api/chat", nil, chat)
	if err != nil {
		return Response{}, err
	}

	var result struct {
		Model   string        `json:"model"`
		Message ollamaMessage `json:"message"`
		Done    bool          `json:"done"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return Response{}, fmt.Errorf("failed to parse response: %w", err)
	}

	logging.Debug("Ollama API response parsed",
		"model", result.Model,
		"content_length", len(result.Message.Content),
		"done", result.Done)

	return Response{
		Content:     result.Message.Content,
		Model:       result.Model,
		RawResponse: string(raw),
	}, nil
}
