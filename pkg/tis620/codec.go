// Package tis620 converts text between UTF-8 and the TIS-620 single-byte
// encoding used for legacy Thai data (the Thai repertoire of Windows-874).
//
// Decode and Encode are strict: they fail on the first unit with no TIS-620
// assignment and report its position. DecodeLossy and EncodeLossy always
// succeed by substituting a replacement for unmappable units. All functions
// are pure and safe for concurrent use.
//
// For streaming conversion with golang.org/x/text/transform, use the TIS620
// encoding defined in this package.
package tis620

import (
	"fmt"
	"strings"
)

// DefaultReplacement is the conventional EncodeLossy replacement byte.
const DefaultReplacement byte = '?'

// replacementRune is substituted by DecodeLossy for unassigned bytes.
const replacementRune = '\uFFFD'

// DecodeError reports the first byte with no TIS-620 assignment.
type DecodeError struct {
	Pos  int  // byte index in the input
	Byte byte // offending byte value
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tis620: 0x%02X at index %d is not a valid TIS-620 byte", e.Byte, e.Pos)
}

// EncodeError reports the first character not representable in TIS-620.
type EncodeError struct {
	Pos  int  // character index in the input, not byte offset
	Rune rune // offending character
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("tis620: %q at index %d is not a valid TIS-620 character", e.Rune, e.Pos)
}

// Decode converts TIS-620 bytes to a string. It fails on the first
// unassigned byte and returns no partial output.
func Decode(input []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(input))
	for i, b := range input {
		r := byteToRune[b]
		if r == invalid {
			return "", &DecodeError{Pos: i, Byte: b}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// DecodeLossy converts TIS-620 bytes to a string, substituting U+FFFD for
// unassigned bytes. It never fails.
func DecodeLossy(input []byte) string {
	var sb strings.Builder
	sb.Grow(len(input))
	for _, b := range input {
		r := byteToRune[b]
		if r == invalid {
			r = replacementRune
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Encode converts a string to TIS-620 bytes. It fails on the first
// character outside the TIS-620 repertoire and returns no partial output.
func Encode(input string) ([]byte, error) {
	buf := make([]byte, 0, len(input))
	pos := 0
	for _, r := range input {
		if r < 0x80 {
			buf = append(buf, byte(r))
			pos++
			continue
		}
		b, ok := runeToByte[r]
		if !ok {
			return nil, &EncodeError{Pos: pos, Rune: r}
		}
		buf = append(buf, b)
		pos++
	}
	return buf, nil
}

// EncodeLossy converts a string to TIS-620 bytes, substituting repl for
// characters outside the repertoire. It never fails.
//
// The replacement must itself be a valid TIS-620 byte (DefaultReplacement,
// or any value obtained from ReplacementByte); passing an unassigned byte
// would produce output that cannot be decoded and panics.
func EncodeLossy(input string, repl byte) []byte {
	if !ValidByte(repl) {
		panic(fmt.Sprintf("tis620: replacement 0x%02X is not a valid TIS-620 byte", repl))
	}
	buf := make([]byte, 0, len(input))
	for _, r := range input {
		if r < 0x80 {
			buf = append(buf, byte(r))
			continue
		}
		b, ok := runeToByte[r]
		if !ok {
			b = repl
		}
		buf = append(buf, b)
	}
	return buf
}

// ReplacementByte returns the TIS-620 byte for r, for use as an EncodeLossy
// replacement. ok is false when r itself is not representable.
func ReplacementByte(r rune) (b byte, ok bool) {
	b, ok = runeToByte[r]
	return b, ok
}
