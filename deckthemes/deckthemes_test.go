package deckthemes_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"

	"oss.terrastruct.com/deck/deckthemes"
	"oss.terrastruct.com/diff"
)

func testTheme() deckthemes.Theme {
	return deckthemes.Theme{
		ID:   7,
		Name: "Test",
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
			deckthemes.Sans: {"Inter", "sans-serif"},
		},
		BoxShadow: map[string]deckthemes.Shadow{
			deckthemes.DeckShadow: {OffsetY: 24, Blur: 60, Color: "rgba(0, 0, 0, 0.35)"},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name   string
		mutate func(*deckthemes.Theme)
		paths  []string
		is     error
	}{
		{
			name:   "valid",
			mutate: func(*deckthemes.Theme) {},
		},
		{
			name: "missing_bg",
			mutate: func(th *deckthemes.Theme) {
				delete(th.Colors, deckthemes.Bg)
			},
			paths: []string{"colors.bg"},
			is:    deckthemes.ErrMissingField,
		},
		{
			name: "no_colors",
			mutate: func(th *deckthemes.Theme) {
				th.Colors = nil
			},
			paths: []string{"colors.bg", "colors.panel", "colors.text", "colors.muted", "colors.accent", "colors.accentHover", "colors.border"},
			is:    deckthemes.ErrMissingField,
		},
		{
			name: "invalid_color",
			mutate: func(th *deckthemes.Theme) {
				th.Colors[deckthemes.Accent] = "#xyz"
			},
			paths: []string{"colors.accent"},
			is:    deckthemes.ErrInvalidColor,
		},
		{
			name: "extra_role_checked",
			mutate: func(th *deckthemes.Theme) {
				th.Colors["danger"] = "reddish"
			},
			paths: []string{"colors.danger"},
			is:    deckthemes.ErrInvalidColor,
		},
		{
			name: "empty_font_stack",
			mutate: func(th *deckthemes.Theme) {
				th.FontFamily[deckthemes.Sans] = nil
			},
			paths: []string{"fontFamily.sans"},
			is:    deckthemes.ErrEmptyFontStack,
		},
		{
			name: "blank_font",
			mutate: func(th *deckthemes.Theme) {
				th.FontFamily[deckthemes.Sans] = []string{"Inter", " "}
			},
			paths: []string{"fontFamily.sans[1]"},
			is:    deckthemes.ErrEmptyFontStack,
		},
		{
			name: "missing_shadow",
			mutate: func(th *deckthemes.Theme) {
				th.BoxShadow = nil
			},
			paths: []string{"boxShadow.deck"},
			is:    deckthemes.ErrMissingField,
		},
		{
			name: "bad_shadow",
			mutate: func(th *deckthemes.Theme) {
				th.BoxShadow[deckthemes.DeckShadow] = deckthemes.Shadow{Blur: -1, Color: "black"}
			},
			paths: []string{"boxShadow.deck"},
			is:    deckthemes.ErrInvalidShadow,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			th := testTheme()
			tc.mutate(&th)
			err := deckthemes.Validate(th)
			if tc.paths == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tc.is), "%v", err)

			var paths []string
			for _, err := range multierr.Errors(err) {
				var ferr *deckthemes.FieldError
				if assert.True(t, errors.As(err, &ferr)) {
					paths = append(paths, ferr.Path)
				}
			}
			assert.Equal(t, tc.paths, paths)
		})
	}
}

func TestValidateMissingBgMessage(t *testing.T) {
	t.Parallel()

	th := testTheme()
	delete(th.Colors, deckthemes.Bg)
	err := deckthemes.Validate(th)
	assert.EqualError(t, err, "colors.bg: missing required field")
}

func TestValidateFor(t *testing.T) {
	t.Parallel()

	th := deckthemes.Theme{
		Colors: map[string]string{deckthemes.Accent: "#3ecf8e"},
	}
	assert.NoError(t, deckthemes.ValidateFor(th, deckthemes.Requirements{Colors: []string{deckthemes.Accent}}))
	assert.Error(t, deckthemes.ValidateFor(th, deckthemes.Requirements{Colors: []string{deckthemes.Bg}}))

	th.BoxShadow = map[string]deckthemes.Shadow{
		deckthemes.DeckShadow: {OffsetY: 24, Blur: 60, Color: "0b0d10"},
	}
	err := deckthemes.ValidateFor(th, deckthemes.Requirements{})
	assert.True(t, errors.Is(err, deckthemes.ErrInvalidShadow), "%v", err)
}

func TestAccessorsCopy(t *testing.T) {
	t.Parallel()

	th := testTheme()
	fonts, ok := th.Fonts(deckthemes.Sans)
	assert.True(t, ok)
	fonts[0] = "Papyrus"
	again, _ := th.Fonts(deckthemes.Sans)
	assert.Equal(t, "Inter", again[0])

	_, ok = th.Fonts("serif")
	assert.False(t, ok)
	_, ok = th.Color("nope")
	assert.False(t, ok)
	_, ok = th.Shadow("nope")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	t.Parallel()

	th := testTheme()
	c := th.Clone()
	assert.True(t, th.Equal(c))

	c.Colors[deckthemes.Bg] = "#ffffff"
	c.FontFamily[deckthemes.Sans][0] = "Arial"
	assert.Equal(t, "#0b0d10", th.Colors[deckthemes.Bg])
	assert.Equal(t, "Inter", th.FontFamily[deckthemes.Sans][0])

	assert.True(t, deckthemes.Theme{}.Clone().IsZero())
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		th, err := deckthemes.Unmarshal([]byte(`id: 3
name: Paper
colors:
  bg: "#ffffff"
  panel: "#f4f4f5"
  text: "#18181b"
  muted: "#71717a"
  accent: "#2563eb"
  accentHover: "#1d4ed8"
  border: "#e4e4e7"
fontFamily:
  sans: [Inter, Helvetica, sans-serif]
boxShadow:
  deck: 0 8px 24px rgba(0, 0, 0, 0.1)
`))
		assert.NoError(t, err)
		assert.Equal(t, int64(3), th.ID)
		assert.Equal(t, []string{"Inter", "Helvetica", "sans-serif"}, th.FontFamily[deckthemes.Sans])
		assert.Equal(t, deckthemes.Shadow{OffsetY: 8, Blur: 24, Color: "rgba(0, 0, 0, 0.1)"}, th.BoxShadow[deckthemes.DeckShadow])
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		th, err := deckthemes.Unmarshal([]byte(`{
  "id": 4,
  "name": "Json",
  "colors": {"bg": "#000", "panel": "#111", "text": "#fff", "muted": "#999", "accent": "#0f0", "accentHover": "#0c0", "border": "#333"},
  "fontFamily": {"sans": ["Inter"]},
  "boxShadow": {"deck": "0 1px 2px black"}
}`))
		assert.NoError(t, err)
		assert.Equal(t, "Json", th.Name)
		assert.Equal(t, "#0f0", th.Colors[deckthemes.Accent])
	})

	t.Run("missing_bg", func(t *testing.T) {
		t.Parallel()

		th, err := deckthemes.Unmarshal([]byte(`name: Broken
colors:
  panel: "#111318"
  text: "#f3f4f6"
  muted: "#a1a1aa"
  accent: "#3ecf8e"
  accentHover: "#2fb67b"
  border: "#22262e"
fontFamily:
  sans: [Inter]
boxShadow:
  deck: 0 24px 60px rgba(0, 0, 0, 0.35)
`))
		assert.True(t, th.IsZero())
		assert.True(t, errors.Is(err, deckthemes.ErrMissingField), "%v", err)
		assert.Contains(t, err.Error(), "colors.bg: missing required field")
	})

	t.Run("bare_hex", func(t *testing.T) {
		t.Parallel()

		th, err := deckthemes.Unmarshal([]byte(`name: Bare
colors:
  bg: "0b0d10"
  panel: "#111318"
  text: "#f3f4f6"
  muted: "#a1a1aa"
  accent: "#3ecf8e"
  accentHover: "#2fb67b"
  border: "#22262e"
fontFamily:
  sans: [Inter]
boxShadow:
  deck: 0 24px 60px rgba(0, 0, 0, 0.35)
`))
		assert.True(t, th.IsZero())
		assert.True(t, errors.Is(err, deckthemes.ErrInvalidColor), "%v", err)
		assert.Contains(t, err.Error(), `colors.bg: invalid color: "0b0d10" is not a valid color: hex colors must start with #`)

		_, err = deckthemes.Unmarshal([]byte("boxShadow:\n  deck: 0 24px 60px 0b0d10\n"))
		assert.Error(t, err)
	})

	t.Run("unknown_field", func(t *testing.T) {
		t.Parallel()

		_, err := deckthemes.Unmarshal([]byte("name: x\ncolours: {}\n"))
		assert.Error(t, err)
	})

	t.Run("bad_shadow", func(t *testing.T) {
		t.Parallel()

		_, err := deckthemes.Unmarshal([]byte("boxShadow:\n  deck: 24px rgba(0,0,0,1)\n"))
		assert.Error(t, err)
	})

	t.Run("multiple_documents", func(t *testing.T) {
		t.Parallel()

		b, err := deckthemes.Marshal(testTheme())
		assert.NoError(t, err)
		_, err = deckthemes.Unmarshal(b)
		assert.NoError(t, err)

		th, err := deckthemes.Unmarshal(append(b, []byte("---\nname: Second\n")...))
		assert.True(t, th.IsZero())
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "expected a single document")
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := deckthemes.Unmarshal(nil)
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "empty document"))
	})
}

func TestTailwindConfig(t *testing.T) {
	t.Parallel()

	b, err := deckthemes.TailwindConfig(testTheme(), "deck")
	assert.NoError(t, err)

	exp := `{
  "theme": {
    "extend": {
      "boxShadow": {
        "deck": "0 24px 60px rgba(0, 0, 0, 0.35)"
      },
      "colors": {
        "deck": {
          "accent": "#3ecf8e",
          "accentHover": "#2fb67b",
          "bg": "#0b0d10",
          "border": "#22262e",
          "muted": "#a1a1aa",
          "panel": "#111318",
          "text": "#f3f4f6"
        }
      },
      "fontFamily": {
        "sans": [
          "Inter",
          "sans-serif"
        ]
      }
    }
  }
}`
	ds, err := diff.Strings(exp, string(b))
	assert.NoError(t, err)
	assert.Empty(t, ds)
}
