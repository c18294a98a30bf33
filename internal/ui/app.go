package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/medlens/internal/feed"
	"github.com/abelbrown/medlens/internal/prefs"
)

// Page identifies the active view.
type Page int

const (
	PageOnboarding Page = iota
	PageFeed
	PageSaved
	PageReview
	PageInsights
)

// AppConfig wires the App to the rest of the system. Gateway calls are
// injected as command constructors; the App never talks to a provider
// directly.
type AppConfig struct {
	State *feed.State
	Prefs *prefs.Prefs

	// Recommend yields a RecommendationsResult for the given history.
	Recommend func(history []string) tea.Cmd

	// Summarize yields a SummaryResult for the given item.
	Summarize func(item feed.Item) tea.Cmd

	// Submit processes a paper URL into a pending item, yielding
	// SubmissionReady.
	Submit func(url string) tea.Cmd
}

// App is the root Bubble Tea model.
type App struct {
	cfg    AppConfig
	styles Styles

	page     Page
	items    []feed.Item // feed snapshot, cursor may sit one past the end (the "find more" card)
	cursor   int
	saved    []feed.Item
	savedSel int
	pending  []feed.Item
	pendSel  int

	insightsID  string
	summaries   map[string]string
	summarizing bool

	loading  bool // recommendation request outstanding
	spin     spinner.Model
	urlInput textinput.Model
	typing   bool

	searchInput textinput.Model
	searching   bool // search box focused
	query       string
	results     []feed.Item
	resultSel   int

	flash    string
	flashErr bool

	width  int
	height int
	ready  bool

	interestChoices []string
}

// NewApp creates the root model over the given state and gateways.
func NewApp(cfg AppConfig) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "https://clinicaltrials.gov/..."
	input.CharLimit = 200

	search := textinput.New()
	search.Placeholder = "search titles and summaries"
	search.CharLimit = 100

	page := PageFeed
	if cfg.Prefs != nil && !cfg.Prefs.Onboarded() {
		page = PageOnboarding
	}

	a := App{
		cfg:         cfg,
		styles:      DefaultStyles(),
		page:        page,
		spin:        sp,
		urlInput:    input,
		searchInput: search,
		summaries:   make(map[string]string),
		interestChoices: []string{
			"Oncology", "Cardiology", "Neurology", "Endocrinology", "Psychiatry",
		},
	}
	a.refresh()
	return a
}

// refresh re-reads snapshots from the feed state.
func (a *App) refresh() {
	if a.cfg.State == nil {
		return
	}
	a.items = a.cfg.State.Engine.Items()
	a.saved = a.cfg.State.Saved.Items()
	a.pending = a.cfg.State.Review.Pending()
	if a.savedSel >= len(a.saved) && len(a.saved) > 0 {
		a.savedSel = len(a.saved) - 1
	}
	if a.pendSel >= len(a.pending) && len(a.pending) > 0 {
		a.pendSel = len(a.pending) - 1
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.spin.Tick
}

// flashCmd schedules the status message to clear.
func flashCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		if a.loading || a.summarizing {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case RecommendationsResult:
		return a.handleRecommendations(msg)

	case SummaryResult:
		a.summarizing = false
		if msg.Err != nil {
			a.flash = "Could not generate summary."
			a.flashErr = true
			return a, flashCmd()
		}
		a.summaries[msg.ID] = msg.Summary
		return a, nil

	case SubmissionReady:
		if msg.Err != nil {
			a.flash = "Could not process the submitted paper."
			a.flashErr = true
			return a, flashCmd()
		}
		a.cfg.State.Submit(msg.Item)
		a.refresh()
		a.flash = "Paper submitted. It is now pending review."
		a.flashErr = false
		return a, flashCmd()

	case clearFlashMsg:
		a.flash = ""
		a.flashErr = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleRecommendations merges a finished gateway call into the feed.
// A result arriving after the user navigated away still merges - that
// is harmless, the feed only grows.
func (a App) handleRecommendations(msg RecommendationsResult) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.Err != nil {
		a.flash = "Could not fetch new recommendations."
		a.flashErr = true
		return a, flashCmd()
	}

	result := a.cfg.State.Merge(msg.Titles)
	a.refresh()
	if result.Added > 0 {
		a.flash = "New recommendations added to your feed!"
		a.flashErr = false
	} else {
		a.flash = "No new recommendations - you've seen them all."
		a.flashErr = false
	}
	return a, flashCmd()
}

// handleKey routes keyboard input by page.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// URL entry on the review page captures all typing
	if a.typing {
		return a.handleSubmitTyping(msg)
	}
	if a.searching {
		return a.handleSearchTyping(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	}

	switch a.page {
	case PageOnboarding:
		return a.handleOnboardingKey(msg)
	case PageFeed:
		return a.handleFeedKey(msg)
	case PageSaved:
		return a.handleSavedKey(msg)
	case PageReview:
		return a.handleReviewKey(msg)
	case PageInsights:
		return a.handleInsightsKey(msg)
	}
	return a, nil
}

func (a App) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		a.cfg.Prefs.SetPreference(prefs.PreferPapers)
	case "v":
		a.cfg.Prefs.SetPreference(prefs.PreferVideos)
	case "b":
		a.cfg.Prefs.SetPreference(prefs.PreferBoth)
	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.interestChoices) {
			a.cfg.Prefs.ToggleInterest(a.interestChoices[idx])
		}
	case "enter":
		a.cfg.Prefs.SetOnboarded(true)
		a.page = PageFeed
	}
	return a, nil
}

func (a App) handleFeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An applied search replaces the card view with a result list.
	if a.query != "" {
		return a.handleSearchResultsKey(msg)
	}

	switch msg.String() {
	case "tab":
		a.page = PageSaved
		return a, nil

	case "/":
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink

	case "j", "down":
		// Moving off an item is the settle event: record the view.
		// The cursor may land one past the end, on the "find more" card.
		if a.cursor < len(a.items) {
			a.cfg.State.RecordView(a.items[a.cursor].Title)
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			if a.cursor < len(a.items) {
				a.cfg.State.RecordView(a.items[a.cursor].Title)
			}
			a.cursor--
		}
		return a, nil

	case "g", "home":
		a.cursor = 0
		return a, nil

	case "s":
		if a.cursor < len(a.items) {
			item := a.items[a.cursor]
			if a.cfg.State.Saved.Contains(item.ID) {
				a.cfg.State.RemoveSaved(item.ID)
				a.flash = "Removed from saved."
			} else {
				a.cfg.State.SaveItem(item)
				a.flash = "Saved."
			}
			a.flashErr = false
			a.refresh()
			return a, flashCmd()
		}
		return a, nil

	case "r", "enter":
		if msg.String() == "enter" && a.cursor < len(a.items) {
			return a.openInsights(a.items[a.cursor])
		}
		return a.requestRecommendations()
	}
	return a, nil
}

// requestRecommendations triggers a gateway call, guarding the empty
// history case locally so the provider is never invoked without signal.
func (a App) requestRecommendations() (tea.Model, tea.Cmd) {
	history := a.cfg.State.History.Snapshot()
	if len(history) == 0 {
		a.flash = "Read some papers first! Swipe through the feed so we know what you like."
		a.flashErr = false
		return a, flashCmd()
	}
	if a.cfg.Recommend == nil {
		a.flash = "No AI provider configured."
		a.flashErr = true
		return a, flashCmd()
	}
	// No single-flight guard: a second request while one is outstanding
	// is allowed, both merge independently.
	a.loading = true
	return a, tea.Batch(a.spin.Tick, a.cfg.Recommend(history))
}

func (a App) openInsights(item feed.Item) (tea.Model, tea.Cmd) {
	a.insightsID = item.ID
	a.page = PageInsights
	if _, ok := a.summaries[item.ID]; !ok && a.cfg.Summarize != nil {
		a.summarizing = true
		return a, tea.Batch(a.spin.Tick, a.cfg.Summarize(item))
	}
	return a, nil
}

func (a App) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		a.page = PageReview
		return a, nil
	case "j", "down":
		if a.savedSel < len(a.saved)-1 {
			a.savedSel++
		}
	case "k", "up":
		if a.savedSel > 0 {
			a.savedSel--
		}
	case "d", "x":
		if a.savedSel < len(a.saved) {
			a.cfg.State.RemoveSaved(a.saved[a.savedSel].ID)
			a.refresh()
		}
	case "enter":
		if a.savedSel < len(a.saved) {
			return a.openInsights(a.saved[a.savedSel])
		}
	}
	return a, nil
}

func (a App) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		a.page = PageFeed
		return a, nil
	case "n":
		a.typing = true
		a.urlInput.Focus()
		return a, textinput.Blink
	case "j", "down":
		if a.pendSel < len(a.pending)-1 {
			a.pendSel++
		}
	case "k", "up":
		if a.pendSel > 0 {
			a.pendSel--
		}
	case "a":
		if a.pendSel < len(a.pending) {
			id := a.pending[a.pendSel].ID
			if a.cfg.State.Approve(id) == feed.OutcomeApproved {
				a.flash = "Approved and added to the feed."
				a.flashErr = false
			}
			a.refresh()
			return a, flashCmd()
		}
	case "x", "d":
		if a.pendSel < len(a.pending) {
			id := a.pending[a.pendSel].ID
			if a.cfg.State.Reject(id) == feed.OutcomeRejected {
				a.flash = "Rejected."
				a.flashErr = false
			}
			a.refresh()
			return a, flashCmd()
		}
	}
	return a, nil
}

// handleSearchTyping filters the feed live as the query changes.
func (a App) handleSearchTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.searchInput.Blur()
		a.searchInput.Reset()
		a.query = ""
		a.results = nil
		a.resultSel = 0
		return a, nil
	case "enter":
		a.searching = false
		a.searchInput.Blur()
		if a.query == "" {
			a.searchInput.Reset()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.query = a.searchInput.Value()
	a.results = a.cfg.State.Engine.Search(a.query)
	a.resultSel = 0
	return a, cmd
}

func (a App) handleSearchResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.query = ""
		a.searchInput.Reset()
		a.results = nil
		a.resultSel = 0
	case "/":
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink
	case "j", "down":
		if a.resultSel < len(a.results)-1 {
			a.resultSel++
		}
	case "k", "up":
		if a.resultSel > 0 {
			a.resultSel--
		}
	case "enter":
		if a.resultSel < len(a.results) {
			return a.openInsights(a.results[a.resultSel])
		}
	}
	return a, nil
}

func (a App) handleSubmitTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.typing = false
		a.urlInput.Blur()
		a.urlInput.Reset()
		return a, nil
	case "enter":
		url := a.urlInput.Value()
		a.typing = false
		a.urlInput.Blur()
		a.urlInput.Reset()
		if url == "" {
			a.flash = "URL cannot be empty."
			a.flashErr = true
			return a, flashCmd()
		}
		if a.cfg.Submit != nil {
			return a, a.cfg.Submit(url)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.urlInput, cmd = a.urlInput.Update(msg)
	return a, cmd
}

func (a App) handleInsightsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		a.page = PageFeed
		a.insightsID = ""
	}
	return a, nil
}

// Cursor returns the current feed cursor (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// FeedItems returns the current feed snapshot (for testing).
func (a App) FeedItems() []feed.Item {
	return a.items
}

// Flash returns the current status message (for testing).
func (a App) Flash() string {
	return a.flash
}

// ActivePage returns the current page (for testing).
func (a App) ActivePage() Page {
	return a.page
}
