package deckthemescatalog

import "oss.terrastruct.com/deck/deckthemes"

const DeckDarkGreenID int64 = 0

// Dark, high-contrast theme with a green accent, sized for projectors and screen
// sharing. Only reachable through Find and Catalog, which hand out copies.
var deckDarkGreen = deckthemes.Theme{
	ID:   DeckDarkGreenID,
	Name: "Deck Dark Green",
	Colors: map[string]string{
		deckthemes.Bg:          "#0b0d10",
		deckthemes.Panel:       "#111318",
		deckthemes.Text:        "#f3f4f6",
		deckthemes.Muted:       "#a1a1aa",
		deckthemes.Accent:      "#3ecf8e",
		deckthemes.AccentHover: "#2fb67b",
		deckthemes.Border:      "#22262e",
	},
	FontFamily: map[string][]string{
		deckthemes.Sans: {"Inter", "SF Pro Display", "Segoe UI", "PingFang SC", "sans-serif"},
	},
	BoxShadow: map[string]deckthemes.Shadow{
		deckthemes.DeckShadow: {OffsetY: 24, Blur: 60, Color: "rgba(0, 0, 0, 0.35)"},
	},
}
