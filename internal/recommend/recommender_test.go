package recommend

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider returns a canned response for testing the gateway logic.
type fakeProvider struct {
	content string
	err     error
	calls   int
}

func (f *fakeProvider) Name() string    { return "fake" }
func (f *fakeProvider) Available() bool { return true }

func (f *fakeProvider) Generate(ctx context.Context, req Request) (Response, error) {
	f.calls++
	if f.err != nil {
		return Response{}, f.err
	}
	return Response{Content: f.content, Model: "fake-1"}, nil
}

func newTestRecommender(p Provider) *Recommender {
	m := NewManager()
	m.AddProvider(p)
	return NewRecommender(m)
}

func TestRecommendEmptyHistoryNeverCallsProvider(t *testing.T) {
	fake := &fakeProvider{content: `["A"]`}
	r := newTestRecommender(fake)

	_, err := r.Recommend(context.Background(), nil)
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("provider must not be called with empty history, got %d calls", fake.calls)
	}
}

func TestRecommendParsesJSONArray(t *testing.T) {
	r := newTestRecommender(&fakeProvider{content: `["Title A", "Title B"]`})

	titles, err := r.Recommend(context.Background(), []string{"Seen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Title A" || titles[1] != "Title B" {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestRecommendParsesFencedJSON(t *testing.T) {
	r := newTestRecommender(&fakeProvider{content: "```json\n[\"Title A\"]\n```"})

	titles, err := r.Recommend(context.Background(), []string{"Seen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Title A" {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestRecommendParsesObjectWrapper(t *testing.T) {
	r := newTestRecommender(&fakeProvider{content: `{"recommendations": ["Title A"]}`})

	titles, err := r.Recommend(context.Background(), []string{"Seen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Title A" {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestRecommendParsesBulletList(t *testing.T) {
	content := "- Title A\n2. Title B\n* Title C\n"
	r := newTestRecommender(&fakeProvider{content: content})

	titles, err := r.Recommend(context.Background(), []string{"Seen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Title A", "Title B", "Title C"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d titles, got %v", len(want), titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("title %d: expected %q, got %q", i, want[i], titles[i])
		}
	}
}

func TestRecommendCapsAtMax(t *testing.T) {
	r := newTestRecommender(&fakeProvider{content: `["A", "B", "C", "D", "E"]`})

	titles, err := r.Recommend(context.Background(), []string{"Seen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != MaxRecommendations {
		t.Errorf("expected cap of %d, got %d", MaxRecommendations, len(titles))
	}
}

func TestRecommendPropagatesProviderError(t *testing.T) {
	r := newTestRecommender(&fakeProvider{err: errors.New("model overloaded")})

	_, err := r.Recommend(context.Background(), []string{"Seen"})
	if err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestRecommendNoProvider(t *testing.T) {
	r := NewRecommender(NewManager())

	_, err := r.Recommend(context.Background(), []string{"Seen"})
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	r := newTestRecommender(&fakeProvider{content: "  A short summary.  "})

	summary, err := r.Summarize(context.Background(), "Title", "Abstract")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "A short summary." {
		t.Errorf("expected trimmed summary, got %q", summary)
	}
}

func TestManagerPrefersNamedProvider(t *testing.T) {
	first := &fakeProvider{content: "first"}
	m := NewManager()
	m.AddProvider(first)

	if got := m.GetAvailable(); got != first {
		t.Fatalf("expected first provider, got %v", got)
	}

	m.SetPreferred("missing")
	if got := m.GetAvailable(); got != first {
		t.Errorf("expected fallback to first available when preferred missing")
	}
}
