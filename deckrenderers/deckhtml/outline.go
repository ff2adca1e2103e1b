package deckhtml

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type OutlineEntry struct {
	Index int      `json:"index"`
	Cover bool     `json:"cover,omitempty"`
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
	Notes string   `json:"notes,omitempty"`
}

// Outline reads back the slide structure of a deck produced by Render.
func Outline(doc []byte) ([]OutlineEntry, error) {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}

	var entries []OutlineEntry
	d.Find("[data-slide]").Each(func(i int, s *goquery.Selection) {
		e := OutlineEntry{
			Index: i,
			Notes: strings.TrimSpace(s.Find("aside.notes").Text()),
		}
		if _, ok := s.Attr("data-cover"); ok {
			e.Cover = true
			// The accent headline is a span inside the h1.
			e.Title = strings.TrimSpace(s.Find("h1").First().Clone().Children().Remove().End().Text())
		} else {
			e.Title = strings.TrimSpace(s.Find("h2").First().Text())
		}
		s.Find("[data-line]").Each(func(_ int, l *goquery.Selection) {
			e.Lines = append(e.Lines, strings.TrimSpace(l.Text()))
		})
		entries = append(entries, e)
	})
	return entries, nil
}
