package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/medlens/internal/feed"
)

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.page {
	case PageOnboarding:
		body = a.renderOnboarding()
	case PageFeed:
		body = a.renderFeed()
	case PageSaved:
		body = a.renderSaved()
	case PageReview:
		body = a.renderReview()
	case PageInsights:
		body = a.renderInsights()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabs(),
		body,
		a.renderStatusBar(),
	)
}

func (a App) renderTabs() string {
	if a.page == PageOnboarding {
		return a.styles.TabActive.Render("Welcome to MedLens")
	}

	tabs := []struct {
		page  Page
		label string
	}{
		{PageFeed, "Feed"},
		{PageSaved, fmt.Sprintf("Saved (%d)", len(a.saved))},
		{PageReview, fmt.Sprintf("Review (%d)", len(a.pending))},
	}

	var parts []string
	for _, t := range tabs {
		style := a.styles.TabInactive
		if t.page == a.page || (a.page == PageInsights && t.page == PageFeed) {
			style = a.styles.TabActive
		}
		parts = append(parts, style.Render(t.label))
	}
	return strings.Join(parts, " ")
}

func (a App) renderStatusBar() string {
	if a.flash != "" {
		style := a.styles.FlashInfo
		if a.flashErr {
			style = a.styles.FlashError
		}
		return style.Render(a.flash)
	}

	if a.loading {
		return a.spin.View() + " Finding papers for you..."
	}

	var hint string
	switch a.page {
	case PageOnboarding:
		hint = "p/v/b content · 1-5 interests · enter to start"
	case PageFeed:
		if a.searching || a.query != "" {
			hint = "type to filter · j/k move · enter insights · esc clear"
		} else {
			hint = "j/k swipe · s save · enter insights · r recommendations · / search · tab pages · q quit"
		}
	case PageSaved:
		hint = "j/k move · d remove · enter insights · tab pages"
	case PageReview:
		hint = "n submit · a approve · x reject · tab pages"
	case PageInsights:
		hint = "esc back"
	}

	user := ""
	if a.cfg.Prefs != nil && a.cfg.Prefs.User() != "" {
		user = a.cfg.Prefs.User() + " · "
	}
	return a.styles.StatusBar.Render(user + hint)
}

func (a App) renderOnboarding() string {
	var b strings.Builder
	b.WriteString(a.styles.CardTitle.Render("Set up your feed"))
	b.WriteString("\n\n")

	pref := a.cfg.Prefs.Preference()
	b.WriteString(a.styles.MetaLabel.Render("Content: "))
	b.WriteString(a.styles.MetaValue.Render(string(pref)))
	b.WriteString("\n\n")
	b.WriteString(a.styles.MetaLabel.Render("Therapeutic interests:"))
	b.WriteString("\n")

	selected := make(map[string]bool)
	for _, i := range a.cfg.Prefs.Interests() {
		selected[i] = true
	}
	for i, choice := range a.interestChoices {
		marker := "[ ]"
		if selected[choice] {
			marker = "[x]"
		}
		b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, marker, choice))
	}

	return a.styles.Card.Width(a.contentWidth()).Render(b.String())
}

func (a App) renderFeed() string {
	if a.searching || a.query != "" {
		return a.renderSearch()
	}
	if a.cursor >= len(a.items) {
		return a.renderFindMoreCard()
	}
	return a.renderItemCard(a.items[a.cursor])
}

func (a App) renderSearch() string {
	var b strings.Builder
	b.WriteString(a.styles.MetaLabel.Render("Search: "))
	b.WriteString(a.searchInput.View())
	b.WriteString("\n\n")

	if a.query == "" {
		b.WriteString(a.styles.Hint.Render("Type to filter the feed."))
	} else if len(a.results) == 0 {
		b.WriteString(a.styles.Hint.Render("No items match."))
	} else {
		b.WriteString(a.renderItemList(a.results, a.resultSel))
	}
	return b.String()
}

// renderFindMoreCard is the slide past the last item: the entry point
// for AI recommendations.
func (a App) renderFindMoreCard() string {
	var b strings.Builder
	b.WriteString(a.styles.CardTitle.Render("Find more to read?"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.CardSummary.Render(
		"Let AI find papers tailored to your interests based on your view history."))
	b.WriteString("\n\n")
	if a.loading {
		b.WriteString(a.spin.View() + " Finding papers...")
	} else {
		b.WriteString(a.styles.Hint.Render("Press r to get recommendations"))
	}
	return a.styles.Card.Width(a.contentWidth()).Render(b.String())
}

func (a App) renderItemCard(item feed.Item) string {
	var b strings.Builder

	kind := a.styles.KindPaper.Render("PAPER")
	if item.Kind == feed.KindVideo {
		kind = a.styles.KindVideo.Render("VIDEO")
	}
	saved := ""
	if a.cfg.State.Saved.Contains(item.ID) {
		saved = "  ★ saved"
	}
	position := fmt.Sprintf("%d/%d", a.cursor+1, len(a.items))
	b.WriteString(kind + a.styles.MetaLabel.Render("  "+position+saved))
	b.WriteString("\n\n")

	width := a.contentWidth() - 6
	b.WriteString(a.styles.CardTitle.Render(runewidth.Truncate(item.Title, width, "…")))
	b.WriteString("\n\n")
	b.WriteString(a.styles.CardSummary.Render(wrap(item.Summary, width)))
	b.WriteString("\n")

	if item.Paper != nil {
		b.WriteString("\n")
		b.WriteString(a.metaLine("Investigator", item.Paper.PrincipalInvestigator))
		b.WriteString(a.metaLine("Sponsor", item.Paper.Sponsor))
		b.WriteString(a.metaLine("Phase", item.Paper.Phase))
		b.WriteString(a.styles.MetaLabel.Render("Status       "))
		b.WriteString(a.statusStyle(item.Paper.Status).Render(item.Paper.Status))
		b.WriteString("\n")
	}
	if item.Video != nil {
		b.WriteString("\n")
		b.WriteString(a.metaLine("Summarizes", item.Video.PaperID))
		b.WriteString(a.metaLine("Video", item.Video.VideoURL))
	}

	return a.styles.Card.Width(a.contentWidth()).Render(b.String())
}

func (a App) metaLine(label, value string) string {
	return a.styles.MetaLabel.Render(runewidth.FillRight(label, 13)) +
		a.styles.MetaValue.Render(value) + "\n"
}

func (a App) statusStyle(status string) lipgloss.Style {
	switch status {
	case "Recruiting":
		return a.styles.StatusRecruiting
	case "Terminated":
		return a.styles.StatusTerminated
	default:
		return a.styles.StatusCompleted
	}
}

func (a App) renderSaved() string {
	if len(a.saved) == 0 {
		return a.styles.Hint.Render("\n  Nothing saved yet. Press s on a feed item to save it.\n")
	}
	return a.renderItemList(a.saved, a.savedSel)
}

func (a App) renderReview() string {
	var b strings.Builder

	if a.typing {
		b.WriteString(a.styles.MetaLabel.Render("Paper URL: "))
		b.WriteString(a.urlInput.View())
		b.WriteString("\n\n")
	}

	if len(a.pending) == 0 {
		b.WriteString(a.styles.Hint.Render("\n  No papers to review. Press n to submit a paper URL.\n"))
	} else {
		b.WriteString(a.renderItemList(a.pending, a.pendSel))
	}
	return b.String()
}

func (a App) renderItemList(items []feed.Item, selected int) string {
	var b strings.Builder
	width := a.contentWidth() - 4
	for i, item := range items {
		line := runewidth.Truncate(item.Title, width, "…")
		if i == selected {
			b.WriteString(a.styles.SelectedItem.Render(line))
		} else {
			b.WriteString(a.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderInsights() string {
	item, ok := a.cfg.State.Engine.GetByID(a.insightsID)
	if !ok {
		// Deep link into an item outside the feed (e.g. saved-only)
		for _, s := range a.saved {
			if s.ID == a.insightsID {
				item, ok = s, true
				break
			}
		}
	}
	if !ok {
		return a.styles.Hint.Render("\n  Item not found.\n")
	}

	var b strings.Builder
	width := a.contentWidth() - 6
	b.WriteString(a.styles.CardTitle.Render(runewidth.Truncate(item.Title, width, "…")))
	b.WriteString("\n\n")

	b.WriteString(a.styles.MetaLabel.Render("AI Insights"))
	b.WriteString("\n")
	if summary, ok := a.summaries[item.ID]; ok {
		b.WriteString(a.styles.CardSummary.Render(wrap(summary, width)))
	} else if a.summarizing {
		b.WriteString(a.spin.View() + " Generating summary...")
	} else {
		b.WriteString(a.styles.Hint.Render("No summary available."))
	}
	b.WriteString("\n\n")
	b.WriteString(a.styles.CardSummary.Render(wrap(item.Summary, width)))

	return a.styles.Card.Width(a.contentWidth()).Render(b.String())
}

func (a App) contentWidth() int {
	w := a.width - 2
	if w < 30 {
		w = 30
	}
	if w > 100 {
		w = 100
	}
	return w
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			line = word
			continue
		}
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
