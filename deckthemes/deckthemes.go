// deckthemes defines the design tokens that style rendered slide decks.
// A Theme is plain data: build it once, pass it to renderers, never mutate it.
package deckthemes

import "reflect"

type Theme struct {
	ID         int64               `json:"id" yaml:"id"`
	Name       string              `json:"name" yaml:"name"`
	Colors     map[string]string   `json:"colors" yaml:"colors"`
	FontFamily map[string][]string `json:"fontFamily" yaml:"fontFamily"`
	BoxShadow  map[string]Shadow   `json:"boxShadow" yaml:"boxShadow"`
}

// Color roles
const (
	Bg          = "bg"
	Panel       = "panel"
	Text        = "text"
	Muted       = "muted"
	Accent      = "accent"
	AccentHover = "accentHover"
	Border      = "border"
)

// Font roles
const (
	Sans = "sans"
)

// Shadow roles
const (
	DeckShadow = "deck"
)

var colorRoles = []string{Bg, Panel, Text, Muted, Accent, AccentHover, Border}

// ColorRoles returns every color role in display order.
func ColorRoles() []string {
	return cloneStrings(colorRoles)
}

func (t Theme) Color(role string) (string, bool) {
	c, ok := t.Colors[role]
	return c, ok
}

// Fonts returns a copy of the font stack for role, highest priority first.
func (t Theme) Fonts(role string) ([]string, bool) {
	fs, ok := t.FontFamily[role]
	if !ok {
		return nil, false
	}
	return cloneStrings(fs), true
}

func (t Theme) Shadow(role string) (Shadow, bool) {
	s, ok := t.BoxShadow[role]
	return s, ok
}

// Clone returns a deep copy. Catalog presets are only handed out as clones so
// that no caller can write through to the shared literal.
func (t Theme) Clone() Theme {
	out := Theme{
		ID:   t.ID,
		Name: t.Name,
	}
	if t.Colors != nil {
		out.Colors = make(map[string]string, len(t.Colors))
		for k, v := range t.Colors {
			out.Colors[k] = v
		}
	}
	if t.FontFamily != nil {
		out.FontFamily = make(map[string][]string, len(t.FontFamily))
		for k, v := range t.FontFamily {
			out.FontFamily[k] = cloneStrings(v)
		}
	}
	if t.BoxShadow != nil {
		out.BoxShadow = make(map[string]Shadow, len(t.BoxShadow))
		for k, v := range t.BoxShadow {
			out.BoxShadow[k] = v
		}
	}
	return out
}

func (t Theme) Equal(t2 Theme) bool {
	return reflect.DeepEqual(t, t2)
}

func (t Theme) IsZero() bool {
	return t.Equal(Theme{})
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
