package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abelbrown/medlens/internal/logging"
)

// MaxRecommendations caps a single recommendation response.
const MaxRecommendations = 3

// ErrEmptyHistory is returned when Recommend is called with no view
// history. Callers are expected to pre-check and surface a friendly
// "read something first" message instead of reaching the provider.
var ErrEmptyHistory = errors.New("view history is empty")

// ErrNoProvider is returned when no AI provider is configured.
var ErrNoProvider = errors.New("no AI provider available")

const recommendSystemPrompt = "You are a clinical trial paper recommendation engine. " +
	"Given the user's view history, recommend papers the user might be interested in. " +
	"Respond with a JSON array of exactly the recommended titles and nothing else."

const summarizeSystemPrompt = "You summarize clinical trial papers for a general audience. " +
	"Respond with a short plain-language summary, three sentences at most, no preamble."

// Recommender is the gateway between the feed core and the AI
// providers: it renders the history into a prompt and parses the
// response back into titles. One attempt per call, no retry - the user
// can re-trigger the action, and automatic retries against a generative
// backend are costly.
type Recommender struct {
	manager *Manager
}

// NewRecommender creates a Recommender over the given provider manager.
func NewRecommender(m *Manager) *Recommender {
	return &Recommender{manager: m}
}

// Available reports whether any provider is ready.
func (r *Recommender) Available() bool {
	return r.manager.GetAvailable() != nil
}

// Recommend returns up to MaxRecommendations titles for the given
// most-recent-first view history. history must be non-empty.
func (r *Recommender) Recommend(ctx context.Context, history []string) ([]string, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	provider := r.manager.GetAvailable()
	if provider == nil {
		return nil, ErrNoProvider
	}

	var b strings.Builder
	b.WriteString("View history, most recent first:\n")
	for _, title := range history {
		b.WriteString(title)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\nRecommend %d paper titles.", MaxRecommendations))

	resp, err := provider.Generate(ctx, Request{
		SystemPrompt: recommendSystemPrompt,
		UserPrompt:   b.String(),
		MaxTokens:    256,
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}

	titles := parseTitles(resp.Content)
	if len(titles) > MaxRecommendations {
		titles = titles[:MaxRecommendations]
	}

	logging.Info("recommendations received",
		"provider", provider.Name(),
		"model", resp.Model,
		"count", len(titles))

	return titles, nil
}

// Summarize returns a short plain-language summary of a paper.
func (r *Recommender) Summarize(ctx context.Context, title, abstract string) (string, error) {
	provider := r.manager.GetAvailable()
	if provider == nil {
		return "", ErrNoProvider
	}

	prompt := fmt.Sprintf("Title: %s\n\nAbstract: %s", title, abstract)
	resp, err := provider.Generate(ctx, Request{
		SystemPrompt: summarizeSystemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    512,
	})
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}

	return strings.TrimSpace(resp.Content), nil
}

// parseTitles extracts recommended titles from a model response.
// Accepts a bare JSON array, a {"recommendations": [...]} object, or a
// plain bullet/numbered list - models don't always follow the format
// instruction.
func parseTitles(content string) []string {
	text := stripCodeFence(strings.TrimSpace(content))

	// Bare JSON array
	var titles []string
	if err := json.Unmarshal([]byte(text), &titles); err == nil {
		return cleanTitles(titles)
	}

	// Object wrapper
	var wrapper struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(text), &wrapper); err == nil && len(wrapper.Recommendations) > 0 {
		return cleanTitles(wrapper.Recommendations)
	}

	// Fall back to line parsing
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		// Strip "1." style numbering
		if len(line) > 2 && line[0] >= '0' && line[0] <= '9' && (line[1] == '.' || line[1] == ')') {
			line = strings.TrimSpace(line[2:])
		}
		line = strings.Trim(line, `"`)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// stripCodeFence removes a surrounding markdown code fence if present.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
