package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks one logical line of segments into display lines no wider
// than width columns, preferring space boundaries and hard-breaking
// words longer than a full line. Code block lines are never wrapped;
// the shell scrolls or clips them instead.
func Wrap(line []Segment, width int) [][]Segment {
	if width <= 0 || len(line) == 0 {
		return [][]Segment{line}
	}
	if line[0].Style == StyleCodeBlock {
		return [][]Segment{line}
	}

	w := wrapper{width: width}
	for _, seg := range line {
		w.addSegment(seg)
	}
	w.flushWord()
	if len(w.current) > 0 || len(w.lines) == 0 {
		w.lines = append(w.lines, w.current)
	}
	return w.lines
}

type wrapper struct {
	width    int
	lines    [][]Segment
	current  []Segment
	lineCols int

	word     []Segment
	wordCols int
}

func (w *wrapper) addSegment(seg Segment) {
	var pending strings.Builder
	flushPending := func() {
		if pending.Len() == 0 {
			return
		}
		part := Segment{Text: pending.String(), Style: seg.Style, URL: seg.URL}
		w.word = append(w.word, part)
		w.wordCols += displayWidth(part.Text)
		pending.Reset()
	}

	for _, ru := range seg.Text {
		if ru != ' ' {
			pending.WriteRune(ru)
			continue
		}
		flushPending()
		w.flushWord()
		w.appendSpace(seg)
	}
	flushPending()
}

func (w *wrapper) appendSpace(seg Segment) {
	// Spaces at a break point are dropped, not carried to the next line.
	if w.lineCols == 0 {
		return
	}
	if w.lineCols+1 > w.width {
		w.breakLine()
		return
	}
	w.current = appendRun(w.current, Segment{Text: " ", Style: seg.Style, URL: seg.URL})
	w.lineCols++
}

func (w *wrapper) flushWord() {
	if len(w.word) == 0 {
		return
	}
	if w.lineCols > 0 && w.lineCols+w.wordCols > w.width {
		w.breakLine()
	}
	if w.wordCols > w.width {
		w.hardBreakWord()
		return
	}
	for _, part := range w.word {
		w.current = appendRun(w.current, part)
	}
	w.lineCols += w.wordCols
	w.word = nil
	w.wordCols = 0
}

func (w *wrapper) hardBreakWord() {
	for _, part := range w.word {
		for _, ru := range part.Text {
			rw := runeCols(ru)
			if w.lineCols+rw > w.width && w.lineCols > 0 {
				w.breakLine()
			}
			w.current = appendRun(w.current, Segment{Text: string(ru), Style: part.Style, URL: part.URL})
			w.lineCols += rw
		}
	}
	w.word = nil
	w.wordCols = 0
}

func (w *wrapper) breakLine() {
	line := w.current
	// Trim the trailing space left behind at a soft break.
	if n := len(line); n > 0 && line[n-1].Text == " " {
		line = line[:n-1]
	}
	w.lines = append(w.lines, line)
	w.current = nil
	w.lineCols = 0
}

// appendRun merges adjacent pieces with identical style and URL so
// wrapped lines do not fragment into per-rune segments.
func appendRun(segs []Segment, seg Segment) []Segment {
	if n := len(segs); n > 0 && segs[n-1].Style == seg.Style && segs[n-1].URL == seg.URL {
		segs[n-1].Text += seg.Text
		return segs
	}
	return append(segs, seg)
}

func displayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeCols(ru)
	}
	return width
}

func runeCols(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w <= 0 {
		w = 1
	}
	return w
}
