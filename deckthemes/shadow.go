package deckthemes

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"oss.terrastruct.com/deck/lib/color"
)

// Shadow is a single CSS box-shadow layer. Lengths are in px.
// It encodes as the CSS literal, e.g. "0 24px 60px rgba(0, 0, 0, 0.35)".
// The color may also lead, as CSS allows, but always encodes last.
type Shadow struct {
	Inset   bool
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64
	Color   string
}

func ParseShadow(s string) (Shadow, error) {
	var sh Shadow
	rest := strings.TrimSpace(s)
	if rest == "" {
		return sh, errors.New("empty shadow")
	}
	if strings.HasPrefix(rest, "inset ") {
		sh.Inset = true
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "inset "))
	}

	if rest != "" && !isLengthStart(rest[0]) {
		sh.Color, rest = splitLeadingColor(rest)
	}

	var lengths []float64
	for rest != "" && isLengthStart(rest[0]) {
		tok := rest
		i := strings.IndexAny(rest, " \t")
		if i >= 0 {
			tok = rest[:i]
			rest = strings.TrimSpace(rest[i:])
		} else {
			rest = ""
		}
		l, err := parseLength(tok)
		if err != nil {
			return Shadow{}, fmt.Errorf("shadow %q: %w", s, err)
		}
		lengths = append(lengths, l)
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return Shadow{}, fmt.Errorf("shadow %q: expected 2 to 4 lengths, got %d", s, len(lengths))
	}
	sh.OffsetX, sh.OffsetY = lengths[0], lengths[1]
	if len(lengths) > 2 {
		sh.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		sh.Spread = lengths[3]
	}
	if sh.Color != "" && rest != "" {
		return Shadow{}, fmt.Errorf("shadow %q: unexpected %q after lengths", s, rest)
	}
	if sh.Color == "" {
		sh.Color = rest
	}

	if err := sh.Validate(); err != nil {
		return Shadow{}, fmt.Errorf("shadow %q: %w", s, err)
	}
	return sh, nil
}

func (sh Shadow) Validate() error {
	for _, l := range []float64{sh.OffsetX, sh.OffsetY, sh.Blur, sh.Spread} {
		if math.IsInf(l, 0) || math.IsNaN(l) {
			return fmt.Errorf("non-finite length %v", l)
		}
	}
	if sh.Blur < 0 {
		return fmt.Errorf("negative blur radius %v", sh.Blur)
	}
	if sh.Color == "" {
		return errors.New("missing color")
	}
	return color.Validate(sh.Color)
}

func (sh Shadow) String() string {
	var parts []string
	if sh.Inset {
		parts = append(parts, "inset")
	}
	parts = append(parts, formatLength(sh.OffsetX), formatLength(sh.OffsetY))
	if sh.Blur != 0 || sh.Spread != 0 {
		parts = append(parts, formatLength(sh.Blur))
	}
	if sh.Spread != 0 {
		parts = append(parts, formatLength(sh.Spread))
	}
	parts = append(parts, sh.Color)
	return strings.Join(parts, " ")
}

func (sh Shadow) MarshalText() ([]byte, error) {
	return []byte(sh.String()), nil
}

func (sh *Shadow) UnmarshalText(b []byte) error {
	v, err := ParseShadow(string(b))
	if err != nil {
		return err
	}
	*sh = v
	return nil
}

// splitLeadingColor splits a color token off the front of s. Functional
// colors like rgba(0, 0, 0, 0.35) contain spaces, so parens are balanced.
func splitLeadingColor(s string) (string, string) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ', '\t':
			if depth == 0 {
				return s[:i], strings.TrimSpace(s[i:])
			}
		}
	}
	return s, ""
}

func isLengthStart(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '+' || b == '.'
}

func parseLength(tok string) (float64, error) {
	num := strings.TrimSuffix(tok, "px")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid length %q", tok)
	}
	if num == tok && f != 0 {
		return 0, fmt.Errorf("length %q is missing px unit", tok)
	}
	return f, nil
}

func formatLength(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "px"
}
