// Package render maps the markdown core's blocks and spans onto styled
// display segments, and writes them as ANSI for non-interactive output.
// The terminal UI and the --print path both consume this package; the
// core itself knows nothing about styling.
package render

import (
	"strings"

	"github.com/anoth-dev/mdview/internal/markdown"
)

// StyleKind describes a semantic style for a display segment.
type StyleKind int

const (
	StylePlain StyleKind = iota
	StyleEmphasis
	StyleStrong
	StyleStrongEmphasis
	StyleCode
	StyleCodeBlock
	StyleLink
	StyleHeading1
	StyleHeading2
	StyleHeading3
)

// Segment is a chunk of display text with one style. URL is set for link
// segments so the shell can make them activatable.
type Segment struct {
	Text  string
	Style StyleKind
	URL   string
}

// Lines renders blocks into logical display lines of styled segments.
// A nil line separates adjacent blocks. Paragraph spans containing
// newlines are split across lines; code block lines pass through
// verbatim, one display line per source line.
func Lines(blocks []markdown.Block) [][]Segment {
	var lines [][]Segment
	for _, block := range blocks {
		rendered := blockLines(block)
		if len(rendered) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, nil)
		}
		lines = append(lines, rendered...)
	}
	return lines
}

func blockLines(block markdown.Block) [][]Segment {
	switch b := block.(type) {
	case markdown.Heading:
		spans := markdown.Format(b.Text)
		return splitSegmentLines(spanSegments(spans, headingStyle(b.Level)))
	case markdown.Paragraph:
		spans := markdown.Format(b.Text)
		return splitSegmentLines(spanSegments(spans, StylePlain))
	case markdown.CodeBlock:
		return codeBlockLines(b.Lines)
	default:
		return nil
	}
}

// BlockSpans is the span sequence a block contributes to the render
// pipeline: inline-formatted spans for headings and paragraphs, a single
// verbatim SpanCodeBlock for code.
func BlockSpans(block markdown.Block) []markdown.Span {
	switch b := block.(type) {
	case markdown.Heading:
		return markdown.Format(b.Text)
	case markdown.Paragraph:
		return markdown.Format(b.Text)
	case markdown.CodeBlock:
		return []markdown.Span{{Kind: markdown.SpanCodeBlock, Lines: b.Lines}}
	default:
		return nil
	}
}

func codeBlockLines(srcLines []string) [][]Segment {
	lines := make([][]Segment, 0, len(srcLines))
	for _, line := range srcLines {
		lines = append(lines, []Segment{{Text: line, Style: StyleCodeBlock}})
	}
	return lines
}

func headingStyle(level int) StyleKind {
	switch level {
	case 1:
		return StyleHeading1
	case 2:
		return StyleHeading2
	default:
		return StyleHeading3
	}
}

func spanSegments(spans []markdown.Span, base StyleKind) []Segment {
	segs := make([]Segment, 0, len(spans))
	for _, sp := range spans {
		switch sp.Kind {
		case markdown.SpanText:
			segs = append(segs, Segment{Text: sp.Text, Style: base})
		case markdown.SpanEmphasis:
			segs = append(segs, Segment{Text: sp.Text, Style: StyleEmphasis})
		case markdown.SpanStrong:
			segs = append(segs, Segment{Text: sp.Text, Style: StyleStrong})
		case markdown.SpanStrongEmphasis:
			segs = append(segs, Segment{Text: sp.Text, Style: StyleStrongEmphasis})
		case markdown.SpanCode:
			segs = append(segs, Segment{Text: sp.Text, Style: StyleCode})
		case markdown.SpanLink:
			segs = append(segs, Segment{Text: sp.Text, Style: StyleLink, URL: sp.URL})
		case markdown.SpanCodeBlock:
			for _, line := range sp.Lines {
				segs = append(segs, Segment{Text: line + "\n", Style: StyleCodeBlock})
			}
		}
	}
	return segs
}

// splitSegmentLines breaks a segment run at embedded newlines. Segment
// styles survive the split, so a strong span wrapping a paragraph's
// line boundary stays strong on both lines.
func splitSegmentLines(segs []Segment) [][]Segment {
	var lines [][]Segment
	current := []Segment{}
	for _, seg := range segs {
		if !strings.ContainsRune(seg.Text, '\n') {
			current = append(current, seg)
			continue
		}
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = []Segment{}
			}
			if part != "" {
				current = append(current, Segment{Text: part, Style: seg.Style, URL: seg.URL})
			}
		}
	}
	lines = append(lines, current)
	return lines
}

// SegmentsText concatenates the literal text of one display line.
func SegmentsText(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}
