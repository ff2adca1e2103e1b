package deckthemescatalog

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/deck/deckthemes"
	"oss.terrastruct.com/deck/lib/color"
)

var catalog = []deckthemes.Theme{
	deckDarkGreen,
}

// Catalog returns copies of every built-in theme in listing order.
func Catalog() []deckthemes.Theme {
	out := make([]deckthemes.Theme, len(catalog))
	for i, t := range catalog {
		out[i] = t.Clone()
	}
	return out
}

// Find returns a copy of the theme with id. Reading the same id twice yields
// equal values and writes to a result never reach the preset.
func Find(id int64) (deckthemes.Theme, bool) {
	for _, theme := range catalog {
		if theme.ID == id {
			return theme.Clone(), true
		}
	}

	return deckthemes.Theme{}, false
}

func CLIString() string {
	var s strings.Builder
	for _, t := range catalog {
		tone := ""
		if bg, ok := t.Color(deckthemes.Bg); ok {
			if lc, err := color.LuminanceCategory(bg); err == nil {
				tone = fmt.Sprintf(" (%s)", lc)
			}
		}
		s.WriteString(fmt.Sprintf("- %s: %d%s\n", t.Name, t.ID, tone))
	}
	return s.String()
}
