package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/abelbrown/medlens/internal/config"
	"github.com/abelbrown/medlens/internal/feed"
	"github.com/abelbrown/medlens/internal/logging"
	"github.com/abelbrown/medlens/internal/prefs"
	"github.com/abelbrown/medlens/internal/recommend"
	"github.com/abelbrown/medlens/internal/store"
	"github.com/abelbrown/medlens/internal/ui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := logging.Init(); err != nil {
		log.Printf("Warning: file logging disabled: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Data directory: ~/.medlens/
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".medlens")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.Open(filepath.Join(dataDir, "medlens.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	profile := prefs.Load(st)
	state := feed.NewState(st, feed.InitialFeed(), feed.SeedItems())

	manager := buildProviderManager(cfg)
	recommender := recommend.NewRecommender(manager)
	logging.Info("medlens starting",
		"ai_available", recommender.Available(),
		"providers", manager.ListAvailable(),
		"feed_items", state.Engine.Len(),
		"pool_items", len(state.Pool()),
		"onboarded", profile.Onboarded())

	appCfg := ui.AppConfig{
		State: state,
		Prefs: profile,

		Recommend: func(history []string) tea.Cmd {
			return func() tea.Msg {
				callCtx, done := context.WithTimeout(ctx, 60*time.Second)
				defer done()
				titles, err := recommender.Recommend(callCtx, history)
				return ui.RecommendationsResult{Titles: titles, Err: err}
			}
		},

		Summarize: func(item feed.Item) tea.Cmd {
			return func() tea.Msg {
				callCtx, done := context.WithTimeout(ctx, 60*time.Second)
				defer done()
				summary, err := recommender.Summarize(callCtx, item.Title, item.Summary)
				return ui.SummaryResult{ID: item.ID, Summary: summary, Err: err}
			}
		},

		Submit: func(url string) tea.Cmd {
			return func() tea.Msg {
				item, err := pendingFromURL(url)
				return ui.SubmissionReady{Item: item, Err: err}
			}
		},
	}

	app := ui.NewApp(appCfg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
		log.Printf("Error running program: %v", err)
	}
}

// buildProviderManager registers every enabled provider, ordered by the
// configured priorities via the manager's fallback chain.
func buildProviderManager(cfg *config.Config) *recommend.Manager {
	m := recommend.NewManager()

	if c := cfg.Models.Claude; c.Enabled && c.APIKey != "" {
		m.AddProvider(recommend.NewClaudeProvider(c.APIKey, c.Model))
	}
	if g := cfg.Models.Gemini; g.Enabled && g.APIKey != "" {
		m.AddProvider(recommend.NewGeminiProvider(g.APIKey, g.Model))
	}
	if o := cfg.Models.Ollama; o.Enabled {
		m.AddProvider(recommend.NewOllamaProvider(o.Endpoint, o.Model))
	}

	enabled := cfg.GetEnabledModels()
	if len(enabled) > 0 {
		m.SetPreferred(enabled[0])
	}
	return m
}

// pendingFromURL turns a submitted paper URL into a queue entry. The
// title is a readable form of the URL until a reviewer curates it.
func pendingFromURL(rawURL string) (feed.Item, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return feed.Item{}, fmt.Errorf("invalid URL: %q", rawURL)
	}

	title := strings.TrimPrefix(rawURL, "https://")
	title = strings.TrimPrefix(title, "http://")

	return feed.Item{
		ID:        "submitted-" + uuid.New().String(),
		Kind:      feed.KindPaper,
		Title:     title,
		Summary:   "Submitted by you. Awaiting review before it joins the feed.",
		SourceURL: rawURL,
	}, nil
}
