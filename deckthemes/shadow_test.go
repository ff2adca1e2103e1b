package deckthemes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/deck/deckthemes"
)

func TestParseShadow(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		in   string
		exp  deckthemes.Shadow
		str  string
	}{
		{
			name: "deck",
			in:   "0 24px 60px rgba(0, 0, 0, 0.35)",
			exp:  deckthemes.Shadow{OffsetY: 24, Blur: 60, Color: "rgba(0, 0, 0, 0.35)"},
			str:  "0 24px 60px rgba(0, 0, 0, 0.35)",
		},
		{
			name: "inset",
			in:   "inset 2px 4px #000",
			exp:  deckthemes.Shadow{Inset: true, OffsetX: 2, OffsetY: 4, Color: "#000"},
			str:  "inset 2px 4px #000",
		},
		{
			name: "spread",
			in:   "  1px -1px 0 2.5px  #22262e ",
			exp:  deckthemes.Shadow{OffsetX: 1, OffsetY: -1, Spread: 2.5, Color: "#22262e"},
			str:  "1px -1px 0 2.5px #22262e",
		},
		{
			name: "color_first",
			in:   "rgba(0, 0, 0, 0.35) 0 24px 60px",
			exp:  deckthemes.Shadow{OffsetY: 24, Blur: 60, Color: "rgba(0, 0, 0, 0.35)"},
			str:  "0 24px 60px rgba(0, 0, 0, 0.35)",
		},
		{
			name: "inset_color_first",
			in:   "inset #000 2px 4px",
			exp:  deckthemes.Shadow{Inset: true, OffsetX: 2, OffsetY: 4, Color: "#000"},
			str:  "inset 2px 4px #000",
		},
	}
	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sh, err := deckthemes.ParseShadow(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, sh)
			assert.Equal(t, tc.str, sh.String())

			var sh2 deckthemes.Shadow
			assert.NoError(t, sh2.UnmarshalText([]byte(sh.String())))
			assert.Equal(t, sh, sh2)
		})
	}
}

func TestParseShadowErrors(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		in  string
		err string
	}{
		{"", "empty shadow"},
		{"24px #000", "expected 2 to 4 lengths, got 1"},
		{"1px 2px 3px 4px 5px #000", "expected 2 to 4 lengths, got 5"},
		{"0 24 60px #000", `length "24" is missing px unit`},
		{"0 24px -3px #000", "negative blur radius -3"},
		{"0 24px 60px", "missing color"},
		{"0 24px 60px notacolor", `shadow "0 24px 60px notacolor"`},
		{"0 24px +Infpx red", `invalid length "+Infpx"`},
		{"-Infpx 24px red", `invalid length "-Infpx"`},
		{"0 24px NaNpx red", `shadow "0 24px NaNpx red"`},
		{"red 0 24px blue", `unexpected "blue" after lengths`},
	}
	for _, tc := range tcs {
		_, err := deckthemes.ParseShadow(tc.in)
		if assert.Error(t, err, tc.in) {
			assert.Contains(t, err.Error(), tc.err)
		}
	}
}

func TestShadowValidateNonFinite(t *testing.T) {
	t.Parallel()

	assert.Error(t, deckthemes.Shadow{Blur: math.Inf(1), Color: "red"}.Validate())
	assert.Error(t, deckthemes.Shadow{OffsetX: math.NaN(), Color: "red"}.Validate())
	assert.NoError(t, deckthemes.Shadow{OffsetY: 24, Blur: 60, Color: "red"}.Validate())
}
