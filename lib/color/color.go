package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Validate reports whether colorString is a CSS color literal a browser would accept:
// hex, rgb(a), hsl(a), hwb or a named color.
func Validate(colorString string) error {
	s := strings.TrimSpace(colorString)
	if s == "" {
		return fmt.Errorf("empty color")
	}
	// csscolorparser accepts hex without the leading #, browsers don't.
	if isBareHex(s) {
		return fmt.Errorf("%q is not a valid color: hex colors must start with #", colorString)
	}
	_, err := csscolorparser.Parse(colorString)
	if err != nil {
		return fmt.Errorf("%q is not a valid color: %w", colorString, err)
	}
	return nil
}

// isBareHex reports whether s is made only of hex digits. No CSS named color is.
func isBareHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// ContrastRatio is the WCAG 2 contrast ratio between two colors, from 1 to 21.
func ContrastRatio(a, b string) (float64, error) {
	la, err := relativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := relativeLuminance(b)
	if err != nil {
		return 0, err
	}
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func relativeLuminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

const (
	// Special
	Empty = ""
	None  = "none"
)
