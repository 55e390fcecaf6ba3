package sim

import "strings"

// accentFold maps the accented runes that occur in Portuguese clinical
// vocabulary to their ASCII base letters.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Normalize lowercases text, folds accents and replaces every
// non-alphanumeric run with a single underscore. Catalog keys pass through
// the same function, so containment checks compare like with like.
func Normalize(text string) string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	lastSep := false
	for _, r := range text {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		lastSep = true
	}
	return strings.TrimSuffix(b.String(), "_")
}
