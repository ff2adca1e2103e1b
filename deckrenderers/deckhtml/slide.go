package deckhtml

import (
	"errors"
	"fmt"
	"strings"

	"oss.terrastruct.com/deck/lib/go2"
)

type Deck struct {
	Title string
	// Tagline is the badge above the cover title.
	Tagline string
	// Headline is the accent line under the cover title.
	Headline string
	Summary  string
	Notes    string
	Slides   []Slide
}

type Slide struct {
	Title string
	Lines []string
	Notes string
}

var ErrSlideFormat = errors.New(`slide must use 'Title|line1\nline2' format`)

// LineSeparator separates body lines inside a slide definition. It is the two
// characters \ and n so that a whole slide fits in one shell argument.
const LineSeparator = `\n`

// ParseSlide parses "Title|line1\nline2". Everything after the first | is body.
// Lines are trimmed and blank lines dropped, so "Title|" is a slide without a body.
func ParseSlide(raw string) (Slide, error) {
	title, body, ok := strings.Cut(raw, "|")
	if !ok {
		return Slide{}, fmt.Errorf("%w: %q", ErrSlideFormat, raw)
	}

	lines := strings.Split(body, LineSeparator)
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	lines = go2.Filter(lines, func(l string) bool {
		return l != ""
	})

	return Slide{
		Title: strings.TrimSpace(title),
		Lines: lines,
	}, nil
}

// ParseSlides parses one slide definition per line. Blank lines and lines starting
// with # are skipped.
func ParseSlides(text string) ([]Slide, error) {
	var slides []Slide
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		s, err := ParseSlide(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		slides = append(slides, s)
	}
	return slides, nil
}

// DefaultSlides is the sample content used when a deck is scaffolded without
// any slides.
func DefaultSlides() []Slide {
	return []Slide{
		{
			Title: "Problem definition",
			Lines: []string{
				"Goal: predict which users churn in the next 30 days",
				"Impact: better retention and marketing spend",
				"Key metrics: AUC, Recall@TopK",
			},
		},
		{
			Title: "Data and features",
			Lines: []string{
				"Sample size: 1.2M user records",
				"Features: activity, payments, support interactions",
				"Risks: class imbalance and time leakage",
			},
		},
		{
			Title: "Evaluation and iteration",
			Lines: []string{
				"Baseline LR: AUC 0.73",
				"Current XGBoost: AUC 0.81",
				"Next: threshold tuning and an online A/B test",
			},
		},
	}
}

func (d Deck) withDefaults() Deck {
	if d.Tagline == "" {
		d.Tagline = "Single HTML + TailwindCSS"
	}
	if d.Headline == "" {
		d.Headline = "Clear on any projector, ready to present"
	}
	if d.Summary == "" {
		d.Summary = "Large type, a dark high-contrast theme and inline SVG visuals, tuned for classrooms and meetings."
	}
	if d.Notes == "" {
		d.Notes = "Open with the goal, then walk through the structure."
	}
	if len(d.Slides) == 0 {
		d.Slides = DefaultSlides()
	}
	return d
}
