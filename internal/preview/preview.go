// Package preview renders the deck's narrative in the terminal so the
// content can be reviewed before any file is generated.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"deckgen/internal/config"
	"deckgen/internal/navigation"
	"deckgen/internal/slides"
	"deckgen/styles"
)

// Model pages through the deck's slides as rendered markdown.
type Model struct {
	Slides []slides.Slide
	Page   int
	Search navigation.Search

	viewport viewport.Model
	buffer   string
}

// New builds a preview model from the deck config.
func New(cfg config.Config) Model {
	return Model{Slides: FromConfig(cfg)}
}

// Run starts the preview TUI and blocks until it exits.
func Run(cfg config.Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation and search key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		return m, tea.ClearScreen

	case tea.KeyMsg:
		keyPress := msg.String()

		if m.Search.Active {
			switch msg.Type {
			case tea.KeyEnter:
				if m.Search.Query() != "" {
					m.Search.Execute(&m)
				} else {
					m.Search.Done()
				}
				return m, nil
			case tea.KeyCtrlC, tea.KeyEscape:
				m.Search.SetQuery("")
				m.Search.Done()
				return m, nil
			}

			var cmd tea.Cmd
			m.Search.SearchTextInput, cmd = m.Search.SearchTextInput.Update(msg)
			return m, cmd
		}

		switch keyPress {
		case "/":
			m.Search.Begin()
			m.Search.SearchTextInput.Focus()
			return m, nil
		case "ctrl+n":
			m.Search.Execute(&m)
			return m, nil
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		default:
			newState := navigation.Navigate(navigation.State{
				Buffer:      m.buffer,
				Page:        m.Page,
				TotalSlides: len(m.Slides),
			}, keyPress)
			m.buffer = newState.Buffer
			m.Page = newState.Page
			return m, nil
		}
	}
	return m, nil
}

// View renders the current slide and the status line.
func (m Model) View() string {
	if len(m.Slides) == 0 {
		return ""
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	slide := m.Slides[m.Page]
	r, _ := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width-4))
	content, err := r.Render(slide.Content)
	if err != nil {
		content = fmt.Sprintf("Error: could not render markdown! (%v)", err)
	}

	var left string
	if m.Search.Active {
		left = m.Search.SearchTextInput.View()
	} else {
		left = styles.Title.Render(slide.Title)
	}
	right := styles.Page.Render(fmt.Sprintf("%d / %d", m.Page+1, len(m.Slides)))
	status := styles.Status.Render(styles.JoinHorizontal(left, right, width))

	return styles.Slide.Render(content) + "\n" + status
}

// CurrentPage returns the page the preview is on.
func (m *Model) CurrentPage() int {
	return m.Page
}

// SetPage moves the preview to the given page.
func (m *Model) SetPage(page int) tea.Cmd {
	m.Page = page
	return nil
}

// Pages returns all preview slides.
func (m *Model) Pages() []slides.Slide {
	return m.Slides
}

// FromConfig flattens the deck content into one markdown page per slide,
// mirroring the order the generator emits.
func FromConfig(cfg config.Config) []slides.Slide {
	var out []slides.Slide

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", cfg.Product.Name, cfg.Product.Tagline)
	for _, f := range cfg.Features {
		fmt.Fprintf(&b, "- **%s** — %s\n", f.Title, f.Description)
	}
	out = append(out, slides.Slide{Title: "Title", Content: b.String()})

	b.Reset()
	fmt.Fprintf(&b, "# %s\n\n", cfg.Problem.Title)
	for _, p := range cfg.Problem.PainPoints {
		fmt.Fprintf(&b, "- ❌ %s\n", p)
	}
	fmt.Fprintf(&b, "\n> ⚠️ THE RISK: %s\n", cfg.Problem.Risk)
	out = append(out, slides.Slide{Title: "The Problem", Content: b.String()})

	b.Reset()
	fmt.Fprintf(&b, "# %s\n\n", cfg.Scale.Title)
	for _, s := range cfg.Scale.Stats {
		fmt.Fprintf(&b, "- **%s** %s\n", s.Value, s.Label)
	}
	out = append(out, slides.Slide{Title: "The Scale", Content: b.String()})

	b.Reset()
	fmt.Fprintf(&b, "# %s\n\n%s\n", cfg.Solution.Title, strings.Join(cfg.Solution.Stages, " → "))
	out = append(out, slides.Slide{Title: "The Solution", Content: b.String()})

	keys := cfg.Demo.Screenshots
	if len(keys) == 0 {
		keys = []string{""}
	}
	if len(keys) > 3 {
		keys = keys[:3]
	}
	for _, key := range keys {
		b.Reset()
		fmt.Fprintf(&b, "# %s\n\n", cfg.Demo.Title)
		if key != "" {
			fmt.Fprintf(&b, "📷 screenshot: `%s`\n", key)
		} else {
			b.WriteString("📷 screenshot placeholder\n")
		}
		out = append(out, slides.Slide{Title: "Live Demo", Content: b.String()})
	}

	b.Reset()
	fmt.Fprintf(&b, "# %s\n\n", cfg.Proof.Title)
	for _, m := range cfg.Proof.Metrics {
		fmt.Fprintf(&b, "- ✓ **%s** %s\n", m.Value, m.Label)
	}
	out = append(out, slides.Slide{Title: "The Proof", Content: b.String()})

	b.Reset()
	fmt.Fprintf(&b, "# %s\n\n", cfg.Roadmap.Title)
	for _, item := range cfg.Roadmap.Completed {
		fmt.Fprintf(&b, "- ✓ %s\n", item)
	}
	b.WriteString("\n⚠️ Honest Gaps\n\n")
	for i, gap := range cfg.Roadmap.Gaps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, gap)
	}
	out = append(out, slides.Slide{Title: "Roadmap", Content: b.String()})

	b.Reset()
	fmt.Fprintf(&b, "# %s\n\n- 💬 %s\n- 🎯 %s\n", cfg.Ask.Title, cfg.Ask.FeedbackQuestion, cfg.Ask.PriorityQuestion)
	if cfg.Ask.ShareURL != "" {
		fmt.Fprintf(&b, "\n🔗 %s\n", cfg.Ask.ShareURL)
	}
	out = append(out, slides.Slide{Title: "The Ask", Content: b.String()})

	return out
}
