package mdtint

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{'o', 'k', 0xff, 0xfe, 0xfd}
	err := ValidateInput(data)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if !strings.Contains(err.Error(), "byte 2") {
		t.Fatalf("expected offset in error, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := []byte(strings.Repeat("abc\x01", 32))
	if err := ValidateInput(data); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	for _, src := range []string{
		"",
		"# Title\n\n> quoted *text*\r\n",
		"tabs\tand unicode: blåbär, 日本語, 😀\n",
		strings.Repeat("long line of text ", 100),
	} {
		if err := ValidateInput([]byte(src)); err != nil {
			t.Fatalf("ValidateInput(%q): %v", src, err)
		}
	}
}

func TestValidateUTF8AcceptsControlBytes(t *testing.T) {
	for _, src := range []string{"a\x00b", strings.Repeat("abc\x01", 32), strings.Repeat("plain text\x1b[0m ", 8)} {
		if err := ValidateUTF8([]byte(src)); err != nil {
			t.Fatalf("ValidateUTF8(%q): %v", src, err)
		}
	}
	if err := ValidateUTF8([]byte{'a', 0xc3}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8 for truncated rune, got %v", err)
	}
}

func TestRenderAcceptsControlBytesByDefault(t *testing.T) {
	for _, src := range []string{"a\x00b", strings.Repeat("plain text\x1b[0m ", 8)} {
		if got := renderPlain(t, src); got != src+"\n" {
			t.Fatalf("want %q got %q", src+"\n", got)
		}
	}
}

func TestRenderWithBinaryCheck(t *testing.T) {
	for _, src := range []string{"a\x00b", strings.Repeat("plain text\x1b[0m ", 8)} {
		var out bytes.Buffer
		err := Render(RenderRequest{
			Reader:  strings.NewReader(src),
			Writer:  &out,
			Theme:   BoringTheme(),
			Options: []RenderOption{WithBinaryCheck(true)},
		})
		if !errors.Is(err, ErrBinaryInput) {
			t.Fatalf("%q: expected ErrBinaryInput, got %v", src, err)
		}
		if out.Len() != 0 {
			t.Fatalf("%q: unexpected output %q", src, out.String())
		}
	}
}
