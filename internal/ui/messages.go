// Package ui provides the Bubble Tea TUI for MedLens.
package ui

import "github.com/abelbrown/medlens/internal/feed"

// RecommendationsResult is sent when a recommendation gateway call
// finishes. Overlapping requests are allowed; each result merges
// independently (merges are idempotent per item id).
type RecommendationsResult struct {
	Titles []string
	Err    error
}

// SummaryResult is sent when an AI summary for an item is ready.
type SummaryResult struct {
	ID      string
	Summary string
	Err     error
}

// SubmissionReady is sent when a submitted paper URL has been processed
// into a pending item for the review queue.
type SubmissionReady struct {
	Item feed.Item
	Err  error
}

// clearFlashMsg dismisses the transient status message.
type clearFlashMsg struct{}
