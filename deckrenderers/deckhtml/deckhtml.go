// deckhtml renders a slide deck as a single self-contained HTML file styled by a
// deckthemes.Theme through Tailwind.
package deckhtml

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"

	"cdr.dev/slog"
	"golang.org/x/net/html"

	"oss.terrastruct.com/deck/deckthemes"
	"oss.terrastruct.com/deck/lib/log"
	"oss.terrastruct.com/xdefer"
)

// Prefix namespaces theme colors and shadows in Tailwind classes: bg-deck-bg,
// text-deck-accent, shadow-deck.
const Prefix = "deck"

const (
	DEFAULT_LANG         = "en"
	DEFAULT_TAILWIND_SRC = "https://cdn.tailwindcss.com"
)

//go:embed static/deck.js
var NavigationScript string

//go:embed static/deck.css
var BaseStylesheet string

type RenderOpts struct {
	// Lang is the html lang attribute.
	Lang string
	// TailwindSrc is the Tailwind play CDN script URL.
	TailwindSrc string
}

// Render validates theme and renders deck. An invalid theme is an error, there is
// no fallback styling.
func Render(ctx context.Context, deck Deck, theme deckthemes.Theme, opts *RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render deck %q", deck.Title)

	if opts == nil {
		opts = &RenderOpts{}
	}
	lang := opts.Lang
	if lang == "" {
		lang = DEFAULT_LANG
	}
	tailwindSrc := opts.TailwindSrc
	if tailwindSrc == "" {
		tailwindSrc = DEFAULT_TAILWIND_SRC
	}

	err = deckthemes.Validate(theme)
	if err != nil {
		return nil, err
	}
	config, err := deckthemes.TailwindConfig(theme, Prefix)
	if err != nil {
		return nil, err
	}

	deck = deck.withDefaults()
	log.Debug(ctx, "rendering deck",
		slog.F("title", deck.Title),
		slog.F("theme", theme.Name),
		slog.F("slides", len(deck.Slides)),
	)

	title := html.EscapeString(deck.Title)
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, `<!doctype html>
<html lang="%s">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <script src="%s"></script>
  <script>
    tailwind.config = %s;
  </script>
  <style>
%s  </style>
</head>
`, html.EscapeString(lang), title, html.EscapeString(tailwindSrc), strings.ReplaceAll(string(config), "\n", "\n    "), indent(BaseStylesheet, "    "))

	fmt.Fprintf(buf, `<body class="m-0 min-h-screen bg-%[1]s-bg text-%[1]s-text font-sans antialiased">
  <main class="mx-auto grid min-h-screen w-full place-items-center p-3 md:p-6">
    <section class="relative h-[calc(100vh-2rem)] max-h-[920px] w-full max-w-[1600px] overflow-hidden rounded-2xl border border-%[1]s-border bg-%[1]s-panel shadow-%[1]s">
`, Prefix)

	renderCover(buf, deck, theme)
	for i, s := range deck.Slides {
		renderSlide(buf, i+1, s, theme)
	}

	fmt.Fprintf(buf, `      <output id="pager" class="absolute bottom-4 right-4 rounded-full border border-%[1]s-border bg-black/40 px-4 py-2 text-base text-%[1]s-muted" aria-live="polite">1 / %[2]d</output>
    </section>
  </main>
  <script>
%[3]s  </script>
</body>
</html>
`, Prefix, len(deck.Slides)+1, indent(NavigationScript, "    "))

	return buf.Bytes(), nil
}

func renderCover(buf *bytes.Buffer, deck Deck, theme deckthemes.Theme) {
	fmt.Fprintf(buf, `      <section class="slide h-full w-full flex-col justify-between p-12 md:p-16" data-slide data-cover>
        <div class="space-y-8">
          <p class="inline-flex rounded-full border border-%[1]s-border bg-white/5 px-4 py-1 text-sm font-medium tracking-wide text-%[1]s-muted">%[2]s</p>
          <h1 class="max-w-5xl text-6xl md:text-7xl lg:text-8xl font-semibold leading-[1.05] tracking-tight text-balance">%[3]s<br/><span class="text-%[1]s-accent">%[4]s</span></h1>
          <p class="max-w-4xl text-2xl md:text-3xl leading-relaxed text-%[1]s-muted">%[5]s</p>
        </div>
        <div class="grid gap-8">
          %[6]s
        </div>
`,
		Prefix,
		html.EscapeString(deck.Tagline),
		html.EscapeString(deck.Title),
		html.EscapeString(deck.Headline),
		html.EscapeString(deck.Summary),
		coverVisual().render(theme),
	)
	renderNotes(buf, deck.Notes)
	buf.WriteString("      </section>\n")
}

func renderSlide(buf *bytes.Buffer, index int, s Slide, theme deckthemes.Theme) {
	var body string
	switch len(s.Lines) {
	case 0:
		body = fmt.Sprintf(`<p class="text-2xl text-%s-muted">Add content</p>`, Prefix)
	case 1:
		body = fmt.Sprintf(`<p class="text-3xl leading-relaxed text-%s-text" data-line>%s</p>`, Prefix, renderInline(s.Lines[0]))
	default:
		items := &strings.Builder{}
		for _, l := range s.Lines {
			fmt.Fprintf(items, `<li class="text-2xl leading-relaxed text-%s-text" data-line>%s</li>`, Prefix, renderInline(l))
		}
		body = fmt.Sprintf(`<ul class="space-y-3 pl-8 list-disc marker:text-%s-accent">%s</ul>`, Prefix, items)
	}

	fmt.Fprintf(buf, `      <section class="slide hidden h-full w-full flex-col justify-between p-12 md:p-16" data-slide>
        <div class="space-y-7">
          <h2 class="text-5xl md:text-6xl font-semibold tracking-tight text-balance text-%[1]s-text">%[2]s</h2>
          %[3]s
        </div>
        <div class="pt-6">%[4]s</div>
`, Prefix, html.EscapeString(s.Title), body, slideVisual(index).render(theme))
	renderNotes(buf, s.Notes)
	buf.WriteString("      </section>\n")
}

func renderNotes(buf *bytes.Buffer, notes string) {
	if notes == "" {
		return
	}
	fmt.Fprintf(buf, "        <aside class=\"notes hidden\">%s</aside>\n", html.EscapeString(notes))
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
