// Package palette holds the ANSI SGR sequences and color sets used by the
// built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	// Reset clears every attribute and color.
	Reset = "\x1b[0m"
	// Bold selects bold (increased intensity).
	Bold = "\x1b[1m"
	// Dim selects faint (decreased intensity).
	Dim = "\x1b[2m"
	// Italic selects italic.
	Italic = "\x1b[3m"
	// Underline selects single underline.
	Underline = "\x1b[4m"
)

// FG256 returns a foreground sequence for a 256-color index.
func FG256(n uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(n)) + "m"
}

// FGRGB returns a 24-bit foreground sequence.
func FGRGB(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// Palette is a set of foreground sequences keyed by role. Attributes such as
// bold and underline are added by the theme, not the palette.
type Palette struct {
	H1       string
	H2       string
	H3       string
	H4       string
	H5       string
	H6       string
	Strong   string
	Emphasis string
	Quote    string
}

// Headings returns the heading colors in level order.
func (p Palette) Headings() [6]string {
	return [6]string{p.H1, p.H2, p.H3, p.H4, p.H5, p.H6}
}

// PaletteDefault uses the 256-color table.
var PaletteDefault = Palette{
	H1:    FG256(203),
	H2:    FG256(214),
	H3:    FG256(114),
	H4:    FG256(75),
	H5:    FG256(141),
	H6:    FG256(80),
	Quote: Dim + FG256(245),
}

// PaletteANSI16 uses only the basic 16 colors for limited terminals.
var PaletteANSI16 = Palette{
	H1:    "\x1b[31m",
	H2:    "\x1b[33m",
	H3:    "\x1b[32m",
	H4:    "\x1b[34m",
	H5:    "\x1b[35m",
	H6:    "\x1b[36m",
	Quote: Dim + "\x1b[90m",
}

// PaletteGruvbox is a 24-bit gruvbox dark palette.
var PaletteGruvbox = Palette{
	H1:       FGRGB(0xfb, 0x49, 0x34),
	H2:       FGRGB(0xfe, 0x80, 0x19),
	H3:       FGRGB(0xfa, 0xbd, 0x2f),
	H4:       FGRGB(0xb8, 0xbb, 0x26),
	H5:       FGRGB(0x83, 0xa5, 0x98),
	H6:       FGRGB(0xd3, 0x86, 0x9b),
	Strong:   FGRGB(0xeb, 0xdb, 0xb2),
	Emphasis: FGRGB(0xd5, 0xc4, 0xa1),
	Quote:    Dim + FGRGB(0x92, 0x83, 0x74),
}

// PaletteNord is a 24-bit nord palette.
var PaletteNord = Palette{
	H1:       FGRGB(0x88, 0xc0, 0xd0),
	H2:       FGRGB(0x81, 0xa1, 0xc1),
	H3:       FGRGB(0x5e, 0x81, 0xac),
	H4:       FGRGB(0xa3, 0xbe, 0x8c),
	H5:       FGRGB(0xeb, 0xcb, 0x8b),
	H6:       FGRGB(0xb4, 0x8e, 0xad),
	Strong:   FGRGB(0xec, 0xef, 0xf4),
	Emphasis: FGRGB(0xe5, 0xe9, 0xf0),
	Quote:    Dim + FGRGB(0x61, 0x6e, 0x88),
}

// PaletteDracula is a 24-bit dracula palette.
var PaletteDracula = Palette{
	H1:       FGRGB(0xff, 0x79, 0xc6),
	H2:       FGRGB(0xbd, 0x93, 0xf9),
	H3:       FGRGB(0x8b, 0xe9, 0xfd),
	H4:       FGRGB(0x50, 0xfa, 0x7b),
	H5:       FGRGB(0xf1, 0xfa, 0x8c),
	H6:       FGRGB(0xff, 0xb8, 0x6c),
	Strong:   FGRGB(0xf8, 0xf8, 0xf2),
	Emphasis: FGRGB(0xf8, 0xf8, 0xf2),
	Quote:    Dim + FGRGB(0x62, 0x72, 0xa4),
}
