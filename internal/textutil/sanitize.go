// Package textutil prepares document text for terminal display.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the column width used when expanding tabs.
const DefaultTabWidth = 4

// Invisible bidi and zero-width formatting runes get a visible label so
// a document cannot reorder or hide the text the viewer draws.
var invisibleRuneLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// CleanLine prepares a single document line for display. Tabs expand to
// spaces at tabWidth columns, remaining control characters become '?',
// and invisible formatting runes are replaced with their label.
func CleanLine(text string, tabWidth int) string {
	if !needsCleaning(text) {
		return text
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	var b strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - column%tabWidth
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
			continue
		}
		if label, ok := invisibleRuneLabels[r]; ok {
			b.WriteString(label)
			column += DisplayWidth(label)
			continue
		}
		if r < 0x20 || r == 0x7f {
			b.WriteByte('?')
			column++
			continue
		}
		b.WriteRune(r)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		column += w
	}
	return b.String()
}

func needsCleaning(text string) bool {
	for _, r := range text {
		if r == '\t' || r < 0x20 || r == 0x7f {
			return true
		}
		if _, ok := invisibleRuneLabels[r]; ok {
			return true
		}
	}
	return false
}
