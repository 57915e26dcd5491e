package navigation

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deckgen/internal/slides"
)

// Model is the part of the preview the search needs to drive.
type Model interface {
	CurrentPage() int
	SetPage(page int) tea.Cmd
	Pages() []slides.Slide
}

// Search holds the state of the `/` search. A query ending in "/i"
// matches case-insensitively; everything before that is a regular
// expression.
type Search struct {
	Active          bool
	SearchTextInput textinput.Model
}

// Query returns the current query string.
func (s *Search) Query() string {
	return s.SearchTextInput.Value()
}

// SetQuery sets the current query string.
func (s *Search) SetQuery(query string) {
	if s.SearchTextInput.Prompt == "" {
		s.SearchTextInput = textinput.New()
		s.SearchTextInput.Prompt = "/"
	}
	s.SearchTextInput.SetValue(query)
}

// Begin enters search mode.
func (s *Search) Begin() {
	s.SetQuery("")
	s.Active = true
}

// Done leaves search mode but keeps the query so ctrl+n can jump to the
// next occurrence.
func (s *Search) Done() {
	s.Active = false
}

// Execute jumps to the next slide matching the query, wrapping around
// the end of the deck. The current slide is checked last so repeated
// searches advance.
func (s *Search) Execute(m Model) {
	defer s.Done()

	expr := s.Query()
	if strings.HasSuffix(expr, "/i") {
		expr = "(?i)" + strings.TrimSuffix(expr, "/i")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return
	}

	pages := m.Pages()
	total := len(pages)
	if total == 0 {
		return
	}
	current := m.CurrentPage()
	for i := 1; i <= total; i++ {
		page := (current + i) % total
		if re.MatchString(pages[page].Content) {
			m.SetPage(page)
			return
		}
	}
}
