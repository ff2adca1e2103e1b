package deckthemes

import (
	"encoding/json"
)

// TailwindConfig renders t as the object assigned to tailwind.config in the page.
// Colors and shadows are namespaced under prefix so classes read bg-<prefix>-bg,
// text-<prefix>-accent, shadow-<prefix>. Font stacks extend Tailwind's own roles.
func TailwindConfig(t Theme, prefix string) ([]byte, error) {
	shadows := make(map[string]string, len(t.BoxShadow))
	for role, sh := range t.BoxShadow {
		if role == DeckShadow {
			role = prefix
		}
		shadows[role] = sh.String()
	}

	cfg := map[string]interface{}{
		"theme": map[string]interface{}{
			"extend": map[string]interface{}{
				"colors": map[string]interface{}{
					prefix: t.Colors,
				},
				"fontFamily": t.FontFamily,
				"boxShadow":  shadows,
			},
		},
	}
	return json.MarshalIndent(cfg, "", "  ")
}
