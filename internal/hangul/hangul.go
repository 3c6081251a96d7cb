// Package hangul converts text typed with a Korean keyboard layout back to
// the Latin keys that produced it, so "아이폰" searches as "dkdlvhs".
package hangul

import "strings"

const (
	syllableBase  = 0xAC00
	syllableLast  = 0xD7A3
	medialCount   = 21
	finalCount    = 28
	initialStride = medialCount * finalCount // 588
)

// 2-set (dubeolsik) keyboard positions of the compatibility jamo
var keys = map[rune]string{
	// consonants
	'ㄱ': "r", 'ㄲ': "R", 'ㄴ': "s", 'ㄷ': "e", 'ㄸ': "E",
	'ㄹ': "f", 'ㅁ': "a", 'ㅂ': "q", 'ㅃ': "Q", 'ㅅ': "t",
	'ㅆ': "T", 'ㅇ': "d", 'ㅈ': "w", 'ㅉ': "W", 'ㅊ': "c",
	'ㅋ': "z", 'ㅌ': "x", 'ㅍ': "v", 'ㅎ': "g",

	// compound finals are typed as two keys
	'ㄳ': "rt", 'ㄵ': "sw", 'ㄶ': "sg", 'ㄺ': "fr", 'ㄻ': "fa",
	'ㄼ': "fq", 'ㄽ': "ft", 'ㄾ': "fx", 'ㄿ': "fv", 'ㅀ': "fg",
	'ㅄ': "qt",

	// vowels
	'ㅏ': "k", 'ㅐ': "o", 'ㅑ': "i", 'ㅒ': "O", 'ㅓ': "j",
	'ㅔ': "p", 'ㅕ': "u", 'ㅖ': "P", 'ㅗ': "h", 'ㅘ': "hk",
	'ㅙ': "ho", 'ㅚ': "hl", 'ㅛ': "y", 'ㅜ': "n", 'ㅝ': "nj",
	'ㅞ': "np", 'ㅟ': "nl", 'ㅠ': "b", 'ㅡ': "m", 'ㅢ': "ml",
	'ㅣ': "l",
}

var (
	initials = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	medials  = []rune("ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ")
	// index 0 means no final consonant
	finals = []rune("\x00ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ")
)

// ToEnglish rewrites Hangul syllables and jamo as the keys that type them.
// Everything else passes through unchanged.
func ToEnglish(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case isSyllable(r):
			code := int(r - syllableBase)
			writeJamo(&b, initials[code/initialStride])
			writeJamo(&b, medials[(code%initialStride)/finalCount])
			if f := code % finalCount; f > 0 {
				writeJamo(&b, finals[f])
			}
		default:
			writeJamo(&b, r)
		}
	}
	return b.String()
}

func writeJamo(b *strings.Builder, r rune) {
	if k, ok := keys[r]; ok {
		b.WriteString(k)
		return
	}
	b.WriteRune(r)
}

// ContainsHangul reports whether text has any Hangul syllable or jamo
func ContainsHangul(text string) bool {
	for _, r := range text {
		if isSyllable(r) {
			return true
		}
		if _, ok := keys[r]; ok {
			return true
		}
	}
	return false
}

// Normalize transliterates text only when it contains Hangul
func Normalize(text string) string {
	if !ContainsHangul(text) {
		return text
	}
	return ToEnglish(text)
}

func isSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}
