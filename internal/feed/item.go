// Package feed owns the client-side feed state: the ordered feed of
// papers and videos, the view-history log, the saved set, and the
// review queue for submitted papers.
package feed

// Kind identifies the variant of a feed item
type Kind string

const (
	KindPaper Kind = "paper"
	KindVideo Kind = "video"
)

// Item represents a single piece of content in the feed.
// This is the unified type that flows through the swipeable view.
// ID is the canonical identity key; titles are NOT guaranteed unique
// (recommendation responses are matched by title at the gateway
// boundary only, see Engine.MergeRecommendations).
type Item struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"type"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	SourceURL string `json:"sourceUrl,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`

	Paper *PaperDetails `json:"paper,omitempty"`
	Video *VideoDetails `json:"video,omitempty"`
}

// PaperDetails is the payload for clinical trial papers.
type PaperDetails struct {
	PrincipalInvestigator string `json:"principalInvestigator"`
	PublishedDate         string `json:"publishedDate"`
	Status                string `json:"status"` // "Recruiting", "Completed", "Terminated"
	Phase                 string `json:"phase"`  // "Phase 1" .. "Phase 4"
	Sponsor               string `json:"sponsor"`
}

// VideoDetails is the payload for AI-generated video summaries.
type VideoDetails struct {
	PaperID      string `json:"paperId"` // The paper this video summarizes
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
