package deckthemescatalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/deck/deckthemes"
)

func TestCatalogValid(t *testing.T) {
	t.Parallel()

	ids := map[int64]bool{}
	for _, theme := range Catalog() {
		assert.NoError(t, deckthemes.Validate(theme), theme.Name)
		assert.False(t, ids[theme.ID], "duplicate theme id %d", theme.ID)
		ids[theme.ID] = true
	}
}

func TestDeckDarkGreenTokens(t *testing.T) {
	t.Parallel()

	theme, ok := Find(DeckDarkGreenID)
	assert.True(t, ok)

	accent, ok := theme.Color(deckthemes.Accent)
	assert.True(t, ok)
	assert.Equal(t, "#3ecf8e", accent)

	border, ok := theme.Color(deckthemes.Border)
	assert.True(t, ok)
	assert.Equal(t, "#22262e", border)

	sans, ok := theme.Fonts(deckthemes.Sans)
	assert.True(t, ok)
	assert.Equal(t, []string{"Inter", "SF Pro Display", "Segoe UI", "PingFang SC", "sans-serif"}, sans)

	sh, ok := theme.Shadow(deckthemes.DeckShadow)
	assert.True(t, ok)
	assert.Equal(t, "0 24px 60px rgba(0, 0, 0, 0.35)", sh.String())
}

func TestFindIdempotent(t *testing.T) {
	t.Parallel()

	first, ok := Find(DeckDarkGreenID)
	assert.True(t, ok)
	second, ok := Find(DeckDarkGreenID)
	assert.True(t, ok)
	assert.True(t, first.Equal(second))

	first.Colors[deckthemes.Accent] = "#000000"
	first.FontFamily[deckthemes.Sans][0] = "Comic Sans"
	delete(first.BoxShadow, deckthemes.DeckShadow)

	third, ok := Find(DeckDarkGreenID)
	assert.True(t, ok)
	assert.True(t, second.Equal(third))
	accent, _ := third.Color(deckthemes.Accent)
	assert.Equal(t, "#3ecf8e", accent)
	sans, _ := third.Fonts(deckthemes.Sans)
	assert.Equal(t, "Inter", sans[0])
}

func TestFindUnknown(t *testing.T) {
	t.Parallel()

	theme, ok := Find(9000)
	assert.False(t, ok)
	assert.True(t, theme.IsZero())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, theme := range Catalog() {
		b, err := json.Marshal(theme)
		assert.NoError(t, err)
		var fromJSON deckthemes.Theme
		assert.NoError(t, json.Unmarshal(b, &fromJSON))
		assert.True(t, theme.Equal(fromJSON), "json round trip: %s", b)

		fromJSONLoader, err := deckthemes.Unmarshal(b)
		assert.NoError(t, err)
		assert.True(t, theme.Equal(fromJSONLoader))

		y, err := deckthemes.Marshal(theme)
		assert.NoError(t, err)
		fromYAML, err := deckthemes.Unmarshal(y)
		assert.NoError(t, err)
		assert.True(t, theme.Equal(fromYAML), "yaml round trip:\n%s", y)

		want, _ := theme.Fonts(deckthemes.Sans)
		got, _ := fromYAML.Fonts(deckthemes.Sans)
		assert.Equal(t, want, got)
	}
}

func TestCLIString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "- Deck Dark Green: 0 (darker)\n", CLIString())
}
