package tis620

import "fmt"

// invalid marks a byte value with no TIS-620 assignment.
const invalid = -1

// byteToRune maps each TIS-620 byte value to its Unicode scalar.
// Thai entries are listed explicitly below; the ASCII range and the
// unassigned slots (0x80-0xA0, 0xDB-0xDE, 0xFC-0xFF) are filled in init.
//
// Reference:
// https://en.wikipedia.org/wiki/Thai_Industrial_Standard_620-2533
// https://en.wikipedia.org/wiki/Thai_(Unicode_block)
var byteToRune = [256]rune{
	0xA1: 'ก', // KO KAI
	0xA2: 'ข', // KHO KHAI
	0xA3: 'ฃ', // KHO KHUAT
	0xA4: 'ค', // KHO KHWAI
	0xA5: 'ฅ', // KHO KHON
	0xA6: 'ฆ', // KHO RAKHANG
	0xA7: 'ง', // NGO NGU
	0xA8: 'จ', // CHO CHAN
	0xA9: 'ฉ', // CHO CHING
	0xAA: 'ช', // CHO CHANG
	0xAB: 'ซ', // SO SO
	0xAC: 'ฌ', // CHO CHOE
	0xAD: 'ญ', // YO YING
	0xAE: 'ฎ', // DO CHADA
	0xAF: 'ฏ', // TO PATAK
	0xB0: 'ฐ', // THO THAN
	0xB1: 'ฑ', // THO NANGMONTHO
	0xB2: 'ฒ', // THO PHUTHAO
	0xB3: 'ณ', // NO NEN
	0xB4: 'ด', // DO DEK
	0xB5: 'ต', // TO TAO
	0xB6: 'ถ', // THO THUNG
	0xB7: 'ท', // THO THAHAN
	0xB8: 'ธ', // THO THONG
	0xB9: 'น', // NO NU
	0xBA: 'บ', // BO BAIMAI
	0xBB: 'ป', // PO PLA
	0xBC: 'ผ', // PHO PHUNG
	0xBD: 'ฝ', // FO FA
	0xBE: 'พ', // PHO PHAN
	0xBF: 'ฟ', // FO FAN
	0xC0: 'ภ', // PHO SAMPHAO
	0xC1: 'ม', // MO MA
	0xC2: 'ย', // YO YAK
	0xC3: 'ร', // RO RUA
	0xC4: 'ฤ', // RU
	0xC5: 'ล', // LO LING
	0xC6: 'ฦ', // LU
	0xC7: 'ว', // WO WAEN
	0xC8: 'ศ', // SO SALA
	0xC9: 'ษ', // SO RUSI
	0xCA: 'ส', // SO SUA
	0xCB: 'ห', // HO HIP
	0xCC: 'ฬ', // LO CHULA
	0xCD: 'อ', // O ANG
	0xCE: 'ฮ', // HO NOKHUK
	0xCF: 'ฯ', // PAIYANNOI
	0xD0: 'ะ', // SARA A
	0xD1: 'ั', // MAI HAN-AKAT
	0xD2: 'า', // SARA AA
	0xD3: 'ำ', // SARA AM
	0xD4: 'ิ', // SARA I
	0xD5: 'ี', // SARA II
	0xD6: 'ึ', // SARA UE
	0xD7: 'ื', // SARA UEE
	0xD8: 'ุ', // SARA U
	0xD9: 'ู', // SARA UU
	0xDA: 'ฺ', // PHINTHU
	0xDF: '฿', // BAHT
	0xE0: 'เ', // SARA E
	0xE1: 'แ', // SARA AE
	0xE2: 'โ', // SARA O
	0xE3: 'ใ', // SARA AI MAIMUAN
	0xE4: 'ไ', // SARA AI MAIMALAI
	0xE5: 'ๅ', // LAKKHANGYAO
	0xE6: 'ๆ', // MAIYAMOK
	0xE7: '็', // MAITAIKHU
	0xE8: '่', // MAI EK
	0xE9: '้', // MAI THO
	0xEA: '๊', // MAI TRI
	0xEB: '๋', // MAI CHATTAWA
	0xEC: '์', // THANTHAKHAT
	0xED: 'ํ', // NIKHAHIT
	0xEE: '๎', // YAMAKKAN
	0xEF: '๏', // FONGMAN
	0xF0: '๐', // ZERO
	0xF1: '๑', // ONE
	0xF2: '๒', // TWO
	0xF3: '๓', // THREE
	0xF4: '๔', // FOUR
	0xF5: '๕', // FIVE
	0xF6: '๖', // SIX
	0xF7: '๗', // SEVEN
	0xF8: '๘', // EIGHT
	0xF9: '๙', // NINE
	0xFA: '๚', // ANGKHANKHU
	0xFB: '๛', // KHOMUT
}

// runeToByte is the inverse of the valid entries of byteToRune.
// Built once in init, read-only afterwards.
var runeToByte map[rune]byte

func init() {
	// ASCII range is identity, everything else not listed above is invalid.
	for b := 0; b < 0x80; b++ {
		byteToRune[b] = rune(b)
	}
	for b := 0x80; b < 256; b++ {
		if byteToRune[b] == 0 {
			byteToRune[b] = invalid
		}
	}

	runeToByte = make(map[rune]byte, 256)
	for b, r := range byteToRune {
		if r == invalid {
			continue
		}
		if prev, dup := runeToByte[r]; dup {
			panic(fmt.Sprintf("tis620: bytes 0x%02X and 0x%02X both map to %U", prev, b, r))
		}
		runeToByte[r] = byte(b)
	}
}

// ValidByte reports whether b has a TIS-620 assignment.
func ValidByte(b byte) bool {
	return byteToRune[b] != invalid
}

// CanEncode reports whether r is representable in TIS-620.
func CanEncode(r rune) bool {
	_, ok := runeToByte[r]
	return ok
}
