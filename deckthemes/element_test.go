package deckthemes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/deck/deckthemes"
)

func TestThemableElement(t *testing.T) {
	t.Parallel()

	el := deckthemes.NewThemableElement("circle", "deck")
	el.Cx = 10
	el.Cy = 20
	el.R = 5
	el.Fill = deckthemes.Accent
	el.Stroke = "#fff"
	el.ClassName = "dot"
	assert.Equal(t, `<circle r="5" cx="10" cy="20" stroke="#fff" class="dot fill-deck-accent" />`, el.Render())

	cp := el.Copy()
	cp.Fill = "#3ecf8e"
	cp.Stroke = deckthemes.Border
	cp.ClassName = ""
	assert.Equal(t, `<circle r="5" cx="10" cy="20" fill="#3ecf8e" class="stroke-deck-border" />`, cp.Render())
	assert.Equal(t, deckthemes.Accent, el.Fill)

	stop := deckthemes.NewThemableElement("stop", "deck")
	stop.Offset = "0%"
	stop.StopColor = `"><script>`
	assert.Equal(t, `<stop offset="0%" stop-color="&#34;&gt;&lt;script&gt;" />`, stop.Render())

	text := deckthemes.NewThemableElement("text", "deck")
	text.X = 1.5
	text.Fill = deckthemes.Muted
	text.Content = "hi"
	assert.Equal(t, `<text x="1.5" class="fill-deck-muted">hi</text>`, text.Render())
}

func TestIsRole(t *testing.T) {
	t.Parallel()

	for _, r := range deckthemes.ColorRoles() {
		assert.True(t, deckthemes.IsRole(r), r)
	}
	assert.False(t, deckthemes.IsRole("#3ecf8e"))
	assert.False(t, deckthemes.IsRole(""))
}

func TestColorRolesCopy(t *testing.T) {
	t.Parallel()

	roles := deckthemes.ColorRoles()
	roles[0] = "nope"
	assert.Equal(t, deckthemes.Bg, deckthemes.ColorRoles()[0])
	assert.False(t, deckthemes.IsRole("nope"))

	req := deckthemes.DefaultRequirements()
	req.Colors[0] = "nope"
	assert.Equal(t, deckthemes.Bg, deckthemes.DefaultRequirements().Colors[0])
	assert.NoError(t, deckthemes.Validate(testTheme()))
}
