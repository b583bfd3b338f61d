package textfilter

import (
	"unicode"

	"golang.org/x/text/runes"
)

// Glyphs holds every non-whitespace rune accepted by the filter.
var Glyphs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0021, Hi: 0x0022, Stride: 1}, // ! "
		{Lo: 0x0027, Hi: 0x0027, Stride: 1}, // '
		{Lo: 0x002c, Hi: 0x002e, Stride: 1}, // , - .
		{Lo: 0x0030, Hi: 0x003b, Stride: 1}, // 0-9 : ;
		{Lo: 0x003f, Hi: 0x003f, Stride: 1}, // ?
		{Lo: 0x0041, Hi: 0x005a, Stride: 1}, // A-Z
		{Lo: 0x0061, Hi: 0x007a, Stride: 1}, // a-z
		{Lo: 0x00b7, Hi: 0x00b7, Stride: 1}, // ·
		{Lo: 0x2014, Hi: 0x2014, Stride: 1}, // —
		{Lo: 0x2018, Hi: 0x2019, Stride: 1}, // ‘ ’
		{Lo: 0x201c, Hi: 0x201d, Stride: 1}, // “ ”
		{Lo: 0x2026, Hi: 0x2026, Stride: 1}, // …
		{Lo: 0x3001, Hi: 0x3002, Stride: 1}, // 、 。
		{Lo: 0x3008, Hi: 0x300b, Stride: 1}, // 〈 〉 《 》
		{Lo: 0x3010, Hi: 0x3011, Stride: 1}, // 【 】
		{Lo: 0x3016, Hi: 0x3017, Stride: 1}, // 〖 〗
		{Lo: 0x4e00, Hi: 0x9fa5, Stride: 1}, // common CJK ideographs
		{Lo: 0xff01, Hi: 0xff01, Stride: 1}, // ！
		{Lo: 0xff0c, Hi: 0xff0c, Stride: 1}, // ，
		{Lo: 0xff1a, Hi: 0xff1b, Stride: 1}, // ： ；
		{Lo: 0xff1f, Hi: 0xff1f, Stride: 1}, // ？
	},
	LatinOffset: 8,
}

// Allowed reports whether r survives filtering.
func Allowed(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(Glyphs, r)
}

// remover is stateless and safe to share between goroutines.
var remover = runes.Remove(runes.Predicate(func(r rune) bool {
	return !Allowed(r)
}))

// Remover returns a transformer that drops every rune outside the whitelist.
// Invalid UTF-8 is treated as U+FFFD and dropped with it.
func Remover() runes.Transformer {
	return remover
}
