package tis620

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// TIS620 is the TIS-620 encoding for use with golang.org/x/text. It exists
// because x/text ships no strict TIS-620 codec of its own (charmap.Windows874
// is a superset with different unassigned ranges, and its tables are private).
//
// Per x/text charmap convention the decoder is never strict: unassigned bytes
// become U+FFFD. Use Decode for strict decoding. The encoder errors on
// characters outside the repertoire; wrap it with encoding.ReplaceUnsupported
// to substitute DefaultReplacement instead.
var TIS620 encoding.Encoding = tis620Encoding{}

type tis620Encoding struct{}

func (tis620Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: tis620Decoder{}}
}

func (tis620Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: tis620Encoder{}}
}

func (tis620Encoding) String() string { return "TIS-620" }

// RepertoireError reports a character that TIS-620 cannot represent. It
// carries the byte substituted when the encoder is wrapped with
// encoding.ReplaceUnsupported.
type RepertoireError byte

func (r RepertoireError) Error() string {
	return "tis620: rune not supported by encoding"
}

func (r RepertoireError) Replacement() byte { return byte(r) }

type tis620Decoder struct{ transform.NopResetter }

func (tis620Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for i, c := range src {
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				err = transform.ErrShortDst
				break
			}
			dst[nDst] = c
			nDst++
			nSrc = i + 1
			continue
		}

		r := byteToRune[c]
		if r == invalid {
			r = replacementRune
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc = i + 1
	}
	return nDst, nSrc, err
}

type tis620Encoder struct{ transform.NopResetter }

func (tis620Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}

		r := rune(src[nSrc])
		if r < utf8.RuneSelf {
			dst[nDst] = byte(r)
			nDst++
			nSrc++
			continue
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if size == 1 {
			// Invalid UTF-8, or a rune split across the buffer boundary.
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
			} else {
				err = RepertoireError(DefaultReplacement)
			}
			break
		}

		b, ok := runeToByte[r]
		if !ok {
			err = RepertoireError(DefaultReplacement)
			break
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, err
}
