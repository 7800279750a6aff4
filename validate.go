package mdtint

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateUTF8 returns an error wrapping ErrInvalidUTF8 if src is not valid
// UTF-8. Control characters, NUL included, are valid.
func ValidateUTF8(src []byte) error {
	for i := 0; i < len(src); {
		if src[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		}
		i += size
	}
	return nil
}

// ValidateInput is ValidateUTF8 plus a binary heuristic: it also returns an
// error wrapping ErrBinaryInput for a NUL byte or a high share of control
// bytes.
func ValidateInput(src []byte) error {
	if err := ValidateUTF8(src); err != nil {
		return err
	}
	var control int
	for i, b := range src {
		if b == 0x00 {
			return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, i)
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return fmt.Errorf("%w: %d control bytes in %d", ErrBinaryInput, control, len(src))
	}
	return nil
}

// isControlByte reports C0 controls other than tab, newline, vertical tab,
// form feed and carriage return, plus DEL.
func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}
