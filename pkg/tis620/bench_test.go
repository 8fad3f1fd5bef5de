package tis620

import (
	"math/rand"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

const allThaiChars = "กขฃคฅฆงจฉชซฌญฎฏฐฑฒณดตถทธนบปผฝพฟภมยรฤลฦวศษสหฬอฮฯะัาำิีึืฺุู฿เแโใไๅๆ็่้๊๋์ํ๎๏๐๑๒๓๔๕๖๗๘๙๚๛"

// benchInput builds a shuffled mix of printable ASCII and the full Thai
// repertoire, n runes long.
func benchInput(n int) string {
	var chars []rune
	for r := rune(32); r < 127; r++ {
		chars = append(chars, r)
	}
	chars = append(chars, []rune(allThaiChars)...)

	rng := rand.New(rand.NewSource(620))
	out := make([]rune, 0, n)
	for len(out) < n {
		out = append(out, chars...)
	}
	out = out[:n]
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return string(out)
}

func BenchmarkEncode(b *testing.B) {
	msg := benchInput(200_000)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeWindows874(b *testing.B) {
	msg := benchInput(200_000)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := charmap.Windows874.NewEncoder().Bytes([]byte(msg)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	enc, err := Encode(benchInput(200_000))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(enc)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeWindows874(b *testing.B) {
	enc, err := Encode(benchInput(200_000))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(enc)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := charmap.Windows874.NewDecoder().Bytes(enc); err != nil {
			b.Fatal(err)
		}
	}
}
