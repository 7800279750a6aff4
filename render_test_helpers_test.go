package mdtint

import (
	"bytes"
	"os"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderWithTheme(t *testing.T, src string, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader([]byte(src)),
		Writer:  &out,
		Theme:   theme,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func renderPlain(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	return renderWithTheme(t, src, BoringTheme(), opts...)
}

func readSample(tb testing.TB) []byte {
	tb.Helper()
	data, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		tb.Fatalf("read sample.md: %v", err)
	}
	return data
}
