package deckcli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/deck/deckrenderers/deckhtml"
	"oss.terrastruct.com/deck/deckthemes"
	"oss.terrastruct.com/deck/deckthemes/deckthemescatalog"
	"oss.terrastruct.com/deck/lib/go2"
	"oss.terrastruct.com/deck/lib/log"
	"oss.terrastruct.com/deck/lib/version"
	"oss.terrastruct.com/deck/lib/xmain"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	// These should be kept up-to-date with help.go
	watchFlag, err := ms.Opts.Bool("DECK_WATCH", "watch", "w", false, "watch for changes to input and live reload. Use $HOST and $PORT to specify the listening address.\n(default localhost:0, which will open on a randomly available local port).")
	if err != nil {
		return err
	}
	hostFlag := ms.Opts.String("HOST", "host", "h", "localhost", "host listening address when used with watch")
	portFlag := ms.Opts.String("PORT", "port", "p", "0", "port listening address when used with watch")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	themeFlag, err := ms.Opts.Int64("DECK_THEME", "theme", "t", deckthemescatalog.DeckDarkGreenID, "the deck theme ID")
	if err != nil {
		return err
	}
	themeFileFlag := ms.Opts.String("DECK_THEME_FILE", "theme-file", "", "", "path to a YAML or JSON theme descriptor. Takes precedence over --theme")
	titleFlag := ms.Opts.String("DECK_TITLE", "title", "", "", "the deck title. Defaults to the input file name")
	slideFlag := ms.Opts.StringArray("", "slide", "", `slide definition in the form 'Title|line1\nline2'. Repeat for multiple slides. Appended after the slides of the input file`)
	langFlag := ms.Opts.String("DECK_LANG", "lang", "", deckhtml.DEFAULT_LANG, "the html lang attribute of the deck")
	tailwindFlag := ms.Opts.String("DECK_TAILWIND_SRC", "tailwind-src", "", deckhtml.DEFAULT_TAILWIND_SRC, "the Tailwind script loaded by the deck")
	timeoutFlag, err := ms.Opts.Int64("DECK_TIMEOUT", "timeout", "", 120, "the maximum number of seconds that deck runs for before timing out and exiting")
	if err != nil {
		return err
	}
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that watch opens. Setting to 0 opens no browser.")
	strictFlag, err := ms.Opts.Bool("DECK_STRICT", "strict", "", false, "make validate exit with code 1 when text contrast is too low")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}
	if *browserFlag != "" {
		ms.Env.Setenv("BROWSER", *browserFlag)
	}

	if len(ms.Opts.Flags.Args()) > 0 {
		switch ms.Opts.Flags.Arg(0) {
		case "themes":
			themesCmd(ctx, ms)
			return nil
		case "theme":
			return themeCmd(ctx, ms)
		case "validate":
			return validateCmd(ctx, ms, *strictFlag)
		case "outline":
			return outlineCmd(ctx, ms)
		case "version":
			if len(ms.Opts.Flags.Args()) > 1 {
				return xmain.UsageErrorf("version subcommand accepts no arguments")
			}
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
	}

	var inputPath string
	var outputPath string

	switch len(ms.Opts.Flags.Args()) {
	case 0:
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		if len(*slideFlag) > 0 || *titleFlag != "" {
			return xmain.UsageErrorf("an output path is required to compile --slide or --title, e.g. %s out.html", filepath.Base(ms.Name))
		}
		help(ms)
		return nil
	case 1:
		if filepath.Ext(ms.Opts.Flags.Arg(0)) == ".html" {
			outputPath = ms.Opts.Flags.Arg(0)
		} else {
			inputPath = ms.Opts.Flags.Arg(0)
			if inputPath == "-" {
				outputPath = "-"
			} else {
				outputPath = renameExt(inputPath, ".html")
			}
		}
	case 2:
		inputPath = ms.Opts.Flags.Arg(0)
		outputPath = ms.Opts.Flags.Arg(1)
	default:
		return xmain.UsageErrorf("too many arguments passed")
	}

	if inputPath != "" && inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}
	themePath := *themeFileFlag
	if themePath != "" && themePath != "-" {
		themePath = ms.AbsPath(themePath)
	}

	if inputPath == "-" && themePath == "-" {
		return xmain.UsageErrorf("slides and --theme-file cannot both be read from stdin")
	}

	var extraSlides []deckhtml.Slide
	for _, raw := range *slideFlag {
		s, err := deckhtml.ParseSlide(raw)
		if err != nil {
			return xmain.UsageErrorf("invalid --slide: %v", err)
		}
		extraSlides = append(extraSlides, s)
	}

	title := *titleFlag
	if title == "" && inputPath != "" && inputPath != "-" {
		title = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}
	if title == "" {
		return xmain.UsageErrorf("--title is required when slides are not read from a file")
	}

	if themePath == "" {
		match, ok := deckthemescatalog.Find(*themeFlag)
		if !ok {
			return xmain.UsageErrorf("-t[heme] could not be found. The available options are:\n%s\nYou provided: %d", deckthemescatalog.CLIString(), *themeFlag)
		}
		ms.Log.Debug.Printf("using theme %s (ID: %d)", match.Name, *themeFlag)
	}

	opts := compileOpts{
		inputPath:   inputPath,
		outputPath:  outputPath,
		themePath:   themePath,
		themeID:     *themeFlag,
		title:       title,
		extraSlides: extraSlides,
		renderOpts: deckhtml.RenderOpts{
			Lang:        *langFlag,
			TailwindSrc: *tailwindFlag,
		},
	}

	if *watchFlag {
		if inputPath == "-" || themePath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with writing output to stdout")
		}
		ms.Log.SetTS(true)
		w, err := newWatcher(ctx, ms, watcherOpts{
			compileOpts: opts,
			host:        *hostFlag,
			port:        *portFlag,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, time.Duration(*timeoutFlag)*time.Second)
	defer cancel()

	_, err = compile(ctx, ms, opts)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", ms.HumanPath(opts.source()), err)
	}
	return nil
}

type compileOpts struct {
	// inputPath is a slides file, - for stdin or empty.
	inputPath  string
	outputPath string
	// themePath overrides themeID when set.
	themePath   string
	themeID     int64
	title       string
	extraSlides []deckhtml.Slide
	renderOpts  deckhtml.RenderOpts
}

func (o compileOpts) source() string {
	if o.inputPath != "" {
		return o.inputPath
	}
	return o.title
}

// watched lists the files whose changes require a recompile.
func (o compileOpts) watched() []string {
	var paths []string
	if o.inputPath != "" {
		paths = append(paths, o.inputPath)
	}
	if o.themePath != "" {
		paths = append(paths, o.themePath)
	}
	return paths
}

func compile(ctx context.Context, ms *xmain.State, opts compileOpts) ([]byte, error) {
	start := time.Now()

	theme, err := loadTheme(ms, opts)
	if err != nil {
		return nil, err
	}

	deck := deckhtml.Deck{
		Title: opts.title,
	}
	if opts.inputPath != "" {
		input, err := ms.ReadPath(opts.inputPath)
		if err != nil {
			return nil, err
		}
		deck.Slides, err = deckhtml.ParseSlides(string(input))
		if err != nil {
			return nil, err
		}
	}
	deck.Slides = append(deck.Slides, opts.extraSlides...)

	out, err := deckhtml.Render(ctx, deck, theme, &opts.renderOpts)
	if err != nil {
		return nil, err
	}

	err = ms.WritePath(opts.outputPath, out)
	if err != nil {
		return nil, err
	}
	if opts.outputPath != "-" {
		ms.Log.Success.Printf("successfully compiled %s to %s in %s", ms.HumanPath(opts.source()), ms.HumanPath(opts.outputPath), time.Since(start).Round(time.Millisecond))
	}
	return out, nil
}

func loadTheme(ms *xmain.State, opts compileOpts) (deckthemes.Theme, error) {
	if opts.themePath == "" {
		theme, ok := deckthemescatalog.Find(opts.themeID)
		if !ok {
			return deckthemes.Theme{}, fmt.Errorf("theme %d not found", opts.themeID)
		}
		return theme, nil
	}
	b, err := ms.ReadPath(opts.themePath)
	if err != nil {
		return deckthemes.Theme{}, err
	}
	theme, err := deckthemes.Unmarshal(b)
	if err != nil {
		return deckthemes.Theme{}, fmt.Errorf("%s: %w", ms.HumanPath(opts.themePath), err)
	}
	return theme, nil
}

func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
