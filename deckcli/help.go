package deckcli

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"cdr.dev/slog"

	"oss.terrastruct.com/deck/deckrenderers/deckhtml"
	"oss.terrastruct.com/deck/deckthemes"
	"oss.terrastruct.com/deck/deckthemes/deckthemescatalog"
	"oss.terrastruct.com/deck/lib/color"
	"oss.terrastruct.com/deck/lib/log"
	"oss.terrastruct.com/deck/lib/version"
	"oss.terrastruct.com/deck/lib/xmain"
	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch=false] [--theme=0] [--title=title] [--slide='Title|line1\nline2']... [slides.txt | -] [deck.html | -]
  %[1]s themes
  %[1]s theme id
  %[1]s [--strict] validate theme.yaml
  %[1]s outline deck.html

%[1]s scaffolds a single file HTML slide deck styled with TailwindCSS.
Slides are read from slides.txt, one 'Title|line1\nline2' per line, followed by any
--slide flags. Sample slides are used when none are given.
It defaults to slides.html if an output path is not provided.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s themes - Lists available themes
  %[1]s theme id - Prints the theme descriptor as JSON
  %[1]s validate theme.yaml - Validates a YAML or JSON theme descriptor. With --strict, low contrast exits 1
  %[1]s outline deck.html - Prints the slide titles and lines of a rendered deck
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}

func themesCmd(_ context.Context, ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, "Available themes:\n%s", deckthemescatalog.CLIString())
}

func themeCmd(ctx context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to show theme")

	if len(ms.Opts.Flags.Args()) != 2 {
		return xmain.UsageErrorf("theme must be passed exactly one theme ID")
	}
	var id int64
	_, err = fmt.Sscan(ms.Opts.Flags.Arg(1), &id)
	if err != nil {
		return xmain.UsageErrorf("invalid theme ID %q", ms.Opts.Flags.Arg(1))
	}
	theme, ok := deckthemescatalog.Find(id)
	if !ok {
		return xmain.UsageErrorf("theme %d could not be found. The available options are:\n%s", id, deckthemescatalog.CLIString())
	}
	log.Debug(ctx, "showing theme", slog.F("id", id), slog.F("name", theme.Name))

	_, err = fmt.Fprintf(ms.Stdout, "%s\n", xjson.MarshalIndent(theme))
	return err
}

func validateCmd(ctx context.Context, ms *xmain.State, strict bool) (err error) {
	defer xdefer.Errorf(&err, "failed to validate")

	if len(ms.Opts.Flags.Args()) != 2 {
		return xmain.UsageErrorf("validate must be passed a theme file to be validated")
	}
	inputPath := ms.Opts.Flags.Arg(1)
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	theme, err := deckthemes.Unmarshal(input)
	if err != nil {
		return err
	}

	lowContrast := 0
	for _, pair := range [][2]string{
		{deckthemes.Text, deckthemes.Bg},
		{deckthemes.Text, deckthemes.Panel},
		{deckthemes.Muted, deckthemes.Panel},
	} {
		if !checkContrast(ms, theme, pair[0], pair[1]) {
			lowContrast++
		}
	}
	log.Debug(ctx, "validated theme", slog.F("name", theme.Name), slog.F("low_contrast", lowContrast))
	if strict && lowContrast > 0 {
		pluralPairs := "pair"
		if lowContrast > 1 {
			pluralPairs = "pairs"
		}
		return xmain.ExitErrorf(1, "found %d low contrast color %s in %s", lowContrast, pluralPairs, ms.HumanPath(inputPath))
	}
	ms.Log.Success.Printf("%s is a valid theme descriptor", ms.HumanPath(inputPath))
	return nil
}

// minContrast is the WCAG AA ratio for body text.
const minContrast = 4.5

// checkContrast warns and returns false when fg on bg is hard to read on a
// projector. Roles that are absent are not required and pass.
func checkContrast(ms *xmain.State, t deckthemes.Theme, fg, bg string) bool {
	fgColor, ok := t.Color(fg)
	if !ok {
		return true
	}
	bgColor, ok := t.Color(bg)
	if !ok {
		return true
	}
	ratio, err := color.ContrastRatio(fgColor, bgColor)
	if err != nil {
		return true
	}
	if ratio < minContrast {
		ms.Log.Warn.Printf("low contrast between colors.%s and colors.%s: %.2f:1 (want at least %v:1)", fg, bg, math.Floor(ratio*100)/100, minContrast)
		return false
	}
	return true
}

func outlineCmd(ctx context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to outline")

	if len(ms.Opts.Flags.Args()) != 2 {
		return xmain.UsageErrorf("outline must be passed a rendered deck")
	}
	inputPath := ms.Opts.Flags.Arg(1)
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	entries, err := deckhtml.Outline(input)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s contains no slides", ms.HumanPath(inputPath))
	}
	log.Debug(ctx, "outlined deck", slog.F("slides", len(entries)))

	for _, e := range entries {
		fmt.Fprintf(ms.Stdout, "%d. %s\n", e.Index+1, e.Title)
		for _, l := range e.Lines {
			fmt.Fprintf(ms.Stdout, "   - %s\n", l)
		}
	}
	return nil
}
