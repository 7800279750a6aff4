package mdtint

import (
	"fmt"
	"io"
	"strings"

	"pkt.systems/mdtint/internal/palette"
)

// Renderer turns a State and the rune that produced it into an output
// fragment.
type Renderer struct {
	styles Styles
}

// NewRenderer returns a Renderer for theme. A nil theme selects DefaultTheme.
func NewRenderer(theme Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{styles: theme.Styles()}
}

// Fragment returns the output for c given the state after consuming c.
// Heading markers and spaces on a heading line render as nothing.
func (r *Renderer) Fragment(s State, c rune) string {
	var b strings.Builder
	r.appendFragment(&b, s, c)
	return b.String()
}

// appendFragment writes prefixes outermost first (heading, quote, italic,
// bold), so bold sits closest to the rune, followed by a single reset.
func (r *Renderer) appendFragment(b *strings.Builder, s State, c rune) {
	if s.HeadingLevel >= 1 && (c == ' ' || c == '#') {
		return
	}
	styled := false
	if s.HeadingLevel >= 1 && s.HeadingLevel <= MaxHeadingLevel {
		styled = writePrefix(b, r.styles.Heading[s.HeadingLevel-1]) || styled
	}
	if s.Quote {
		styled = writePrefix(b, r.styles.Quote) || styled
	}
	if s.Italic {
		styled = writePrefix(b, r.styles.Emphasis) || styled
	}
	if s.Bold {
		styled = writePrefix(b, r.styles.Strong) || styled
	}
	b.WriteRune(c)
	if styled {
		b.WriteString(palette.Reset)
	}
}

func writePrefix(b *strings.Builder, st Style) bool {
	if st.Prefix == "" {
		return false
	}
	b.WriteString(st.Prefix)
	return true
}

// Render folds src through a fresh State and concatenates the fragments.
func (r *Renderer) Render(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	Fold(src, func(s State, c rune) {
		r.appendFragment(&b, s, c)
	})
	return b.String()
}

// RenderString renders src with theme. No trailing newline is added.
func RenderString(src string, theme Theme) string {
	return NewRenderer(theme).Render(src)
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Theme   Theme
	Options []RenderOption
}

// Render reads the whole document from Reader, renders it and writes the
// result followed by a newline to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := resolveConfig(req.Options)
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	validate := ValidateUTF8
	if cfg.binaryCheck {
		validate = ValidateInput
	}
	if err := validate(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if cfg.stripFrontMatter {
		src = stripFrontMatter(src)
	}
	out := NewRenderer(req.Theme).Render(string(src))
	if cfg.width > 0 {
		out = wrapStyled(out, cfg.width)
	}
	if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}
