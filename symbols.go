package insertgen

// SymbolSets are the built-in symbol alphabets, keyed by the name used in
// Config.SymbolSet. Every entry is a single renderable glyph.
var SymbolSets = map[string][]string{
	"shapes": {
		"●", "▲", "■", "★", "◆", "♥", "◯", "△",
		"□", "☆", "◇", "♦", "▼", "▶", "◀",
	},
	"letters": {
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	},
	"numbers": {
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	},
	"mixed": {
		"●", "▲", "■", "★", "A", "B", "C", "1", "2", "3", "X", "Y", "Z",
	},
}

// symbolSet returns the named built-in alphabet, falling back to "shapes"
// for unknown names.
func symbolSet(name string) []string {
	if set, ok := SymbolSets[name]; ok {
		return set
	}
	return SymbolSets["shapes"]
}

// alphabetRunes returns the distinct runes appearing across an alphabet,
// for glyph-coverage checks during font resolution.
func alphabetRunes(alphabet []string) []rune {
	seen := make(map[rune]bool)
	var runes []rune
	for _, s := range alphabet {
		for _, r := range s {
			if !seen[r] {
				seen[r] = true
				runes = append(runes, r)
			}
		}
	}
	return runes
}
