package navigation

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"deckgen/internal/slides"
)

type mockModel struct {
	slides []slides.Slide
	page   int
}

func (m *mockModel) CurrentPage() int {
	return m.page
}

func (m *mockModel) SetPage(page int) tea.Cmd {
	m.page = page
	return nil
}

func (m *mockModel) Pages() []slides.Slide {
	return m.slides
}

func TestSearch(t *testing.T) {
	data := []slides.Slide{
		{Content: "hi"},
		{Content: "first"},
		{Content: "second"},
		{Content: "third"},
		{Content: "AbCdEfG"},
		{Content: "abcdefg"},
		{Content: "seconds"},
	}

	type query struct {
		desc     string
		query    string
		expected int
	}

	// query -> expected page
	queries := []query{
		{"basic 'first'", "first", 1},
		{"basic 'abc'", "abc", 5},
		{"basic 'abc' next occurrence", "abc", 5},
		{"'abc' ignore case", "abc/i", 4},
		{"'abc' ignore case", "abc/i", 5},
		{"'abc' ignore case", "abc/i", 4},
		{"next occurrence 1/2", "sec", 6},
		{"next occurrence 2/2", "sec", 2},
		{"regex", "a.c", 5},
		{"regex next occurrence", "a.c", 5},
		{"regex ignore case", "a.c/i", 4},
		{"regex ignore case next occurrence", "a.c/i", 5},
	}

	m := &mockModel{
		slides: data,
		page:   0,
	}

	s := &Search{}
	for _, query := range queries {
		s.SetQuery(query.query)
		s.Execute(m)
		if m.CurrentPage() != query.expected {
			t.Errorf("[%s] expected page %d, got %d", query.desc, query.expected, m.CurrentPage())
		}
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		desc         string
		state        State
		key          string
		expectedPage int
		expectedBuf  string
	}{
		{"next", State{Page: 0, TotalSlides: 8}, "j", 1, ""},
		{"next clamps at end", State{Page: 7, TotalSlides: 8}, "l", 7, ""},
		{"prev", State{Page: 3, TotalSlides: 8}, "k", 2, ""},
		{"prev clamps at start", State{Page: 0, TotalSlides: 8}, "h", 0, ""},
		{"digit buffers", State{Page: 0, TotalSlides: 8}, "3", 0, "3"},
		{"count applies", State{Buffer: "3", Page: 0, TotalSlides: 8}, "j", 3, ""},
		{"first slide", State{Page: 5, TotalSlides: 8}, "g", 0, ""},
		{"last slide", State{Page: 0, TotalSlides: 8}, "G", 7, ""},
		{"goto slide", State{Buffer: "4", Page: 0, TotalSlides: 8}, "G", 3, ""},
		{"unknown key clears buffer", State{Buffer: "12", Page: 2, TotalSlides: 8}, "x", 2, ""},
	}

	for _, tt := range tests {
		got := Navigate(tt.state, tt.key)
		if got.Page != tt.expectedPage {
			t.Errorf("[%s] expected page %d, got %d", tt.desc, tt.expectedPage, got.Page)
		}
		if got.Buffer != tt.expectedBuf {
			t.Errorf("[%s] expected buffer %q, got %q", tt.desc, tt.expectedBuf, got.Buffer)
		}
	}
}
