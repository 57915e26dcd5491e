// Package config describes the deck's content: every string, pair, and
// list that lands on a slide. A YAML file overrides the built-in
// template field by field.
package config

import (
	"fmt"
	"os"

	"deckgen/internal/palette"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Product  Product   `yaml:"product"`
	Features []Feature `yaml:"features"`
	Problem  Problem   `yaml:"problem"`
	Scale    Scale     `yaml:"scale"`
	Solution Solution  `yaml:"solution"`
	Demo     Demo      `yaml:"demo"`
	Proof    Proof     `yaml:"proof"`
	Roadmap  Roadmap   `yaml:"roadmap"`
	Ask      Ask       `yaml:"ask"`
	Theme    Theme     `yaml:"theme"`

	// Screenshots is the directory probed for slide images.
	Screenshots string `yaml:"screenshots"`

	// Notes overrides the built-in speaker notes, keyed by slide name
	// (title, problem, scale, solution, demo, proof, roadmap, ask).
	Notes map[string]string `yaml:"notes"`
}

type Product struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Problem struct {
	Title      string   `yaml:"title"`
	PainPoints []string `yaml:"pain_points"`
	Risk       string   `yaml:"risk"`
}

type Stat struct {
	Value  string `yaml:"value"`
	Label  string `yaml:"label"`
	Color  string `yaml:"color"`
	Filled bool   `yaml:"filled"`
}

type Scale struct {
	Title string `yaml:"title"`
	Stats []Stat `yaml:"stats"`
}

type Solution struct {
	Title  string   `yaml:"title"`
	Stages []string `yaml:"stages"`
}

type Demo struct {
	Title string `yaml:"title"`
	// Screenshots holds lookup keys (or paths); each one gets its own
	// demo slide, capped at three.
	Screenshots []string `yaml:"screenshots"`
}

type Metric struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Proof struct {
	Title   string   `yaml:"title"`
	Metrics []Metric `yaml:"metrics"`
}

type Roadmap struct {
	Title     string   `yaml:"title"`
	Completed []string `yaml:"completed"`
	Gaps      []string `yaml:"gaps"`
}

type Ask struct {
	Title            string `yaml:"title"`
	FeedbackQuestion string `yaml:"feedback_question"`
	PriorityQuestion string `yaml:"priority_question"`
	ShareURL         string `yaml:"share_url"`
}

type Theme struct {
	// Colors overrides palette roles with hex values.
	Colors map[string]string `yaml:"colors"`
	// Font is an optional TTF used for placeholder captions.
	Font string `yaml:"font"`
}

// Default returns the fully populated template deck. Every builder falls
// back to these values, so a missing config still yields a complete deck.
func Default() Config {
	return Config{
		Product: Product{
			Name:    "Your Product",
			Tagline: "One-sentence value proposition",
		},
		Features: []Feature{
			{Title: "Feature 1", Description: "Brief description"},
			{Title: "Feature 2", Description: "Brief description"},
			{Title: "Feature 3", Description: "Brief description"},
		},
		Problem: Problem{
			Title:      "State the problem as an action title",
			PainPoints: []string{"Pain point 1", "Pain point 2", "Pain point 3"},
			Risk:       "What happens if this problem isn't solved?",
		},
		Scale: Scale{
			Title: "Big number that shows the magnitude",
			Stats: []Stat{
				{Value: "100+", Label: "metric 1", Color: palette.Primary, Filled: true},
				{Value: "50K", Label: "metric 2", Color: palette.Accent},
				{Value: "99%", Label: "metric 3", Color: palette.Purple},
			},
		},
		Solution: Solution{
			Title:  "How your product solves the problem",
			Stages: []string{"Input", "Your Product", "Output"},
		},
		Demo: Demo{
			Title: "Show, don't tell — demonstrate the core value",
		},
		Proof: Proof{
			Title: "Metrics and evidence that it works",
			Metrics: []Metric{
				{Value: "95%", Label: "Metric 1"},
				{Value: "2.5x", Label: "Metric 2"},
				{Value: "100%", Label: "Metric 3"},
			},
		},
		Roadmap: Roadmap{
			Title:     "What's done, what's next",
			Completed: []string{"Milestone 1", "Milestone 2", "Milestone 3"},
			Gaps:      []string{"Known limitation", "Future work", "Open question"},
		},
		Ask: Ask{
			Title:            "What do you need from the audience?",
			FeedbackQuestion: "What specific feedback do you want?",
			PriorityQuestion: "What decision do you need help with?",
		},
		Screenshots: "screenshots",
	}
}

// Load reads a YAML deck description over the defaults. Fields the file
// does not mention keep their template values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every color reference resolves against the themed
// palette.
func (c Config) Validate() error {
	pal := palette.Default()
	if err := pal.Apply(c.Theme.Colors); err != nil {
		return err
	}
	for _, stat := range c.Scale.Stats {
		if stat.Color == "" {
			continue
		}
		if _, err := pal.Get(stat.Color); err != nil {
			return fmt.Errorf("scale stat %q: %w", stat.Value, err)
		}
	}
	return nil
}
