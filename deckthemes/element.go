package deckthemes

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/net/html"

	"oss.terrastruct.com/deck/lib/color"
	"oss.terrastruct.com/deck/lib/go2"
)

// ThemableElement is a helper class for creating new SVG elements.
// This should be preferred over formatting and must be used
// whenever Fill or Stroke contains a color role from a theme,
// i.e. bg | panel | text | muted | accent | accentHover | border.
// Roles render as Tailwind classes so the element follows the page theme.
type ThemableElement struct {
	tag    string
	prefix string

	X      float64
	Y      float64
	X1     float64
	Y1     float64
	X2     float64
	Y2     float64
	Width  float64
	Height float64
	R      float64
	Rx     float64
	Cx     float64
	Cy     float64

	ID      string
	D       string
	ViewBox string
	Offset  string

	Fill        string
	Stroke      string
	StrokeWidth float64
	StopColor   string
	FontSize    float64

	ClassName  string
	Style      string
	Attributes string

	Content string
}

// NewThemableElement returns an element whose role colors resolve against
// classes namespaced by prefix, e.g. fill-deck-accent.
func NewThemableElement(tag, prefix string) *ThemableElement {
	return &ThemableElement{
		tag:         tag,
		prefix:      prefix,
		X:           math.MaxFloat64,
		Y:           math.MaxFloat64,
		X1:          math.MaxFloat64,
		Y1:          math.MaxFloat64,
		X2:          math.MaxFloat64,
		Y2:          math.MaxFloat64,
		Width:       math.MaxFloat64,
		Height:      math.MaxFloat64,
		R:           math.MaxFloat64,
		Rx:          math.MaxFloat64,
		Cx:          math.MaxFloat64,
		Cy:          math.MaxFloat64,
		StrokeWidth: math.MaxFloat64,
		FontSize:    math.MaxFloat64,
		Fill:        color.Empty,
		Stroke:      color.Empty,
	}
}

func IsRole(s string) bool {
	return go2.Contains(colorRoles, s)
}

func (el *ThemableElement) Copy() *ThemableElement {
	tmp := *el
	return &tmp
}

func (el *ThemableElement) Render() string {
	out := "<" + el.tag

	if len(el.ID) > 0 {
		out += fmt.Sprintf(` id="%s"`, html.EscapeString(el.ID))
	}
	if len(el.ViewBox) > 0 {
		out += fmt.Sprintf(` viewBox="%s"`, el.ViewBox)
	}
	for _, a := range []struct {
		name string
		v    float64
	}{
		{"x", el.X},
		{"y", el.Y},
		{"x1", el.X1},
		{"y1", el.Y1},
		{"x2", el.X2},
		{"y2", el.Y2},
		{"width", el.Width},
		{"height", el.Height},
		{"r", el.R},
		{"rx", el.Rx},
		{"cx", el.Cx},
		{"cy", el.Cy},
		{"stroke-width", el.StrokeWidth},
		{"font-size", el.FontSize},
	} {
		if a.v != math.MaxFloat64 {
			out += fmt.Sprintf(` %s="%s"`, a.name, formatFloat(a.v))
		}
	}
	if len(el.D) > 0 {
		out += fmt.Sprintf(` d="%s"`, el.D)
	}
	if len(el.Offset) > 0 {
		out += fmt.Sprintf(` offset="%s"`, el.Offset)
	}
	if len(el.StopColor) > 0 {
		out += fmt.Sprintf(` stop-color="%s"`, html.EscapeString(el.StopColor))
	}

	class := el.ClassName

	// Add class {property}-{prefix}-{role} if the color is a theme role, set the property otherwise
	if IsRole(el.Stroke) {
		class += fmt.Sprintf(" stroke-%s-%s", el.prefix, el.Stroke)
	} else if len(el.Stroke) > 0 {
		out += fmt.Sprintf(` stroke="%s"`, html.EscapeString(el.Stroke))
	}
	if IsRole(el.Fill) {
		class += fmt.Sprintf(" fill-%s-%s", el.prefix, el.Fill)
	} else if len(el.Fill) > 0 {
		out += fmt.Sprintf(` fill="%s"`, html.EscapeString(el.Fill))
	}

	if len(class) > 0 {
		out += fmt.Sprintf(` class="%s"`, trimLeadingSpace(class))
	}
	if len(el.Style) > 0 {
		out += fmt.Sprintf(` style="%s"`, el.Style)
	}
	if len(el.Attributes) > 0 {
		out += fmt.Sprintf(` %s`, el.Attributes)
	}

	if len(el.Content) > 0 {
		return fmt.Sprintf("%s>%s</%s>", out, el.Content, el.tag)
	}
	return out + " />"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func trimLeadingSpace(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}
