package mdtint

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/mdtint/internal/palette"
)

// wrapStyled word-wraps rendered output. A break lands on a styled space or
// newline, which leaves that rune's prefixes at the end of one line and its
// reset at the start of the next; both are dropped so every line closes the
// styles it opens.
func wrapStyled(out string, width int) string {
	wrapped := wordwrap.String(out, width)
	if !strings.Contains(wrapped, "\x1b[") {
		return wrapped
	}
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i > 0 {
			line = strings.TrimPrefix(line, palette.Reset)
		}
		lines[i] = trimDanglingPrefixes(line)
	}
	return strings.Join(lines, "\n")
}

// trimDanglingPrefixes removes trailing CSI sequences other than a reset.
func trimDanglingPrefixes(line string) string {
	for {
		start := lastCSI(line)
		if start < 0 || line[start:] == palette.Reset {
			return line
		}
		line = line[:start]
	}
}

// lastCSI returns the start of a CSI sequence ending line, or -1.
func lastCSI(line string) int {
	n := len(line)
	if n < 3 {
		return -1
	}
	final := line[n-1]
	if final < 0x40 || final > 0x7E {
		return -1
	}
	i := n - 2
	for i >= 0 && (line[i] >= '0' && line[i] <= '9' || line[i] == ';') {
		i--
	}
	if i < 1 || line[i] != '[' || line[i-1] != '\x1b' {
		return -1
	}
	return i - 1
}
