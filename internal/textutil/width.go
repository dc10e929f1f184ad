package textutil

import "github.com/mattn/go-runewidth"

// DisplayWidth reports the number of terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, appending tail when
// anything was cut.
func Truncate(text string, width int, tail string) string {
	return runewidth.Truncate(text, width, tail)
}
