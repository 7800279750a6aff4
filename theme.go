package mdtint

import (
	"sort"
	"strings"

	"pkt.systems/mdtint/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Heading  [6]Style
	Strong   Style
	Emphasis Style
	Quote    Style
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme without any styling. Output rendered with it
// carries no escape sequences.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

// Levels 1-3 are bold and underlined, 4-6 bold only.
func stylesFromPalette(p palette.Palette) Styles {
	var s Styles
	for i, color := range p.Headings() {
		if i < 3 {
			s.Heading[i] = style(palette.Bold, palette.Underline, color)
		} else {
			s.Heading[i] = style(palette.Bold, color)
		}
	}
	s.Strong = style(palette.Bold, p.Strong)
	s.Emphasis = style(palette.Italic, p.Emphasis)
	s.Quote = style(p.Quote)
	return s
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"ansi16":  theme{name: "ansi16", styles: stylesFromPalette(palette.PaletteANSI16)},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":    theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"dracula": theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"boring":  BoringTheme(),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
