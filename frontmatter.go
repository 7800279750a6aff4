package mdtint

import "bytes"

var frontMatterDelimiters = [][]byte{
	[]byte("---"),
	[]byte("+++"),
	[]byte(";;;"),
}

// stripFrontMatter removes a front matter block at the very start of src.
// The block must open with a delimiter line, continue with a line that looks
// like metadata and close with the same delimiter. Anything else is returned
// unchanged.
func stripFrontMatter(src []byte) []byte {
	open, next := nextLine(src, 0)
	delim, ok := openingDelimiter(open)
	if !ok || next >= len(src) {
		return src
	}
	second, _ := nextLine(src, next)
	if !metadataLikely(second) {
		return src
	}
	for idx := next; idx < len(src); {
		line, after := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[after:]
		}
		idx = after
	}
	return src
}

// nextLine returns the line starting at start without its terminator, and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func openingDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	for _, d := range frontMatterDelimiters {
		if bytes.Equal(trimmed, d) {
			return d, true
		}
	}
	return nil, false
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
}
