package deckhtml

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/deck/deckthemes"
	"oss.terrastruct.com/deck/lib/color"
	"oss.terrastruct.com/deck/lib/go2"
)

type point struct {
	x, y float64
}

type visual struct {
	width, height float64
	gradientID    string
	label         string
	path          string
	dots          []point
	dotR          float64
	strokeWidth   float64
	caption       point
	captionSize   float64
	maxWidth      string
}

// slideVisual is the decorative curve under a slide body. The curve shape shifts
// with seed so consecutive slides don't look identical.
func slideVisual(seed int) visual {
	offset := float64(20 + go2.Clamp(seed%4, 0, 3)*12)
	return visual{
		width:       640,
		height:      280,
		gradientID:  fmt.Sprintf("g%d", seed),
		label:       "Illustration",
		path:        fmt.Sprintf("M0 238 C120 %v, 220 %v, 320 180 C420 150, 520 205, 640 120", 170+offset, 210-offset),
		dots:        []point{{120, 172 + offset}, {320, 180}, {520, 205}},
		dotR:        6,
		strokeWidth: 7,
		caption:     point{26, 38},
		captionSize: 18,
		maxWidth:    "760px",
	}
}

func coverVisual() visual {
	return visual{
		width:       820,
		height:      220,
		gradientID:  "coverGradient",
		label:       "Cover illustration",
		path:        "M40 166 L200 106 L360 140 L520 80 L780 132",
		dots:        []point{{200, 106}, {360, 140}, {520, 80}},
		dotR:        7,
		strokeWidth: 8,
		caption:     point{36, 42},
		captionSize: 20,
		maxWidth:    "980px",
	}
}

func (v visual) render(theme deckthemes.Theme) string {
	accent, _ := theme.Color(deckthemes.Accent)
	accentHover, _ := theme.Color(deckthemes.AccentHover)

	var b strings.Builder

	stops := &strings.Builder{}
	for _, s := range []struct {
		offset string
		color  string
	}{{"0%", accent}, {"100%", accentHover}} {
		stop := deckthemes.NewThemableElement("stop", Prefix)
		stop.Offset = s.offset
		stop.StopColor = s.color
		stops.WriteString(stop.Render())
	}
	gradient := deckthemes.NewThemableElement("linearGradient", Prefix)
	gradient.ID = v.gradientID
	gradient.Attributes = `x1="0" y1="0" x2="1" y2="1"`
	gradient.Content = stops.String()
	b.WriteString("<defs>" + gradient.Render() + "</defs>")

	bg := deckthemes.NewThemableElement("rect", Prefix)
	bg.X, bg.Y = 0, 0
	bg.Width, bg.Height = v.width, v.height
	bg.Fill = deckthemes.Bg
	b.WriteString(bg.Render())

	curve := deckthemes.NewThemableElement("path", Prefix)
	curve.D = v.path
	curve.Fill = color.None
	curve.Stroke = fmt.Sprintf("url(#%s)", v.gradientID)
	curve.StrokeWidth = v.strokeWidth
	b.WriteString(curve.Render())

	baseDot := deckthemes.NewThemableElement("circle", Prefix)
	baseDot.R = v.dotR
	baseDot.Fill = deckthemes.Accent
	for _, p := range v.dots {
		dot := baseDot.Copy()
		dot.Cx, dot.Cy = p.x, p.y
		b.WriteString(dot.Render())
	}

	caption := deckthemes.NewThemableElement("text", Prefix)
	caption.X, caption.Y = v.caption.x, v.caption.y
	caption.Fill = deckthemes.Muted
	caption.FontSize = v.captionSize
	caption.Content = "Inline SVG Visual"
	b.WriteString(caption.Render())

	svg := deckthemes.NewThemableElement("svg", Prefix)
	svg.ViewBox = fmt.Sprintf("0 0 %v %v", v.width, v.height)
	svg.ClassName = fmt.Sprintf("w-full max-w-[%s] rounded-2xl border border-%s-border bg-black/30", v.maxWidth, Prefix)
	svg.Attributes = fmt.Sprintf(`role="img" aria-label="%s"`, v.label)
	svg.Content = b.String()
	return svg.Render()
}
