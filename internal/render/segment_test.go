package render

import (
	"reflect"
	"testing"

	"github.com/anoth-dev/mdview/internal/markdown"
)

func TestLinesBasicDocument(t *testing.T) {
	blocks := markdown.Segment("# Title\n\npara *em* text\n\n```\ncode `x`\n```")
	lines := Lines(blocks)

	want := [][]Segment{
		{{Text: "Title", Style: StyleHeading1}},
		nil,
		{
			{Text: "para ", Style: StylePlain},
			{Text: "em", Style: StyleEmphasis},
			{Text: " text", Style: StylePlain},
		},
		nil,
		{{Text: "code `x`", Style: StyleCodeBlock}},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines mismatch\ngot:  %#v\nwant: %#v", lines, want)
	}
}

func TestLinesParagraphSplitsAtSourceLines(t *testing.T) {
	blocks := markdown.Segment("one\ntwo\nthree")
	lines := Lines(blocks)
	if len(lines) != 3 {
		t.Fatalf("expected 3 display lines, got %d: %#v", len(lines), lines)
	}
	for i, wantText := range []string{"one", "two", "three"} {
		if got := SegmentsText(lines[i]); got != wantText {
			t.Fatalf("line %d = %q, want %q", i, got, wantText)
		}
	}
}

func TestLinesCodeBlockIsVerbatim(t *testing.T) {
	blocks := markdown.Segment("```\n# H\n**bold**\n```")
	lines := Lines(blocks)
	if len(lines) != 2 {
		t.Fatalf("expected 2 code lines, got %#v", lines)
	}
	for _, line := range lines {
		if len(line) != 1 || line[0].Style != StyleCodeBlock {
			t.Fatalf("code line must be one verbatim segment: %#v", line)
		}
	}
	if lines[0][0].Text != "# H" || lines[1][0].Text != "**bold**" {
		t.Fatalf("code content altered: %#v", lines)
	}
}

func TestLinesLinkCarriesURL(t *testing.T) {
	blocks := markdown.Segment("[docs](https://example.com)")
	lines := Lines(blocks)
	if len(lines) != 1 || len(lines[0]) != 1 {
		t.Fatalf("unexpected shape: %#v", lines)
	}
	seg := lines[0][0]
	if seg.Style != StyleLink || seg.URL != "https://example.com" || seg.Text != "docs" {
		t.Fatalf("link segment mismatch: %#v", seg)
	}
}

func TestLinesHeadingLevels(t *testing.T) {
	blocks := markdown.Segment("# a\n## b\n### c\n#### d")
	lines := Lines(blocks)
	styles := []StyleKind{}
	for _, line := range lines {
		if line == nil {
			continue
		}
		styles = append(styles, line[0].Style)
	}
	want := []StyleKind{StyleHeading1, StyleHeading2, StyleHeading3, StyleHeading3}
	if !reflect.DeepEqual(styles, want) {
		t.Fatalf("heading styles mismatch: %v", styles)
	}
}

func TestBlockSpansForCodeBlock(t *testing.T) {
	spans := BlockSpans(markdown.CodeBlock{Lines: []string{"a", "b"}})
	if len(spans) != 1 || spans[0].Kind != markdown.SpanCodeBlock {
		t.Fatalf("expected single code-block span, got %#v", spans)
	}
	if !reflect.DeepEqual(spans[0].Lines, []string{"a", "b"}) {
		t.Fatalf("code lines mismatch: %#v", spans[0].Lines)
	}
}

func TestWrapBreaksAtSpaces(t *testing.T) {
	line := []Segment{{Text: "alpha beta gamma delta", Style: StylePlain}}
	wrapped := Wrap(line, 11)
	texts := make([]string, len(wrapped))
	for i, l := range wrapped {
		texts[i] = SegmentsText(l)
	}
	want := []string{"alpha beta", "gamma delta"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("wrap mismatch: %q", texts)
	}
}

func TestWrapPreservesStyleAcrossBreak(t *testing.T) {
	line := []Segment{
		{Text: "plain ", Style: StylePlain},
		{Text: "strong words here", Style: StyleStrong},
	}
	wrapped := Wrap(line, 12)
	if len(wrapped) < 2 {
		t.Fatalf("expected a break, got %#v", wrapped)
	}
	last := wrapped[len(wrapped)-1]
	if len(last) == 0 || last[0].Style != StyleStrong {
		t.Fatalf("style lost across break: %#v", last)
	}
}

func TestWrapHardBreaksLongWord(t *testing.T) {
	line := []Segment{{Text: "abcdefghij", Style: StylePlain}}
	wrapped := Wrap(line, 4)
	texts := make([]string, len(wrapped))
	for i, l := range wrapped {
		texts[i] = SegmentsText(l)
	}
	want := []string{"abcd", "efgh", "ij"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("hard break mismatch: %q", texts)
	}
}

func TestWrapNeverWrapsCodeBlocks(t *testing.T) {
	line := []Segment{{Text: "a very long code line that exceeds any width", Style: StyleCodeBlock}}
	wrapped := Wrap(line, 10)
	if len(wrapped) != 1 {
		t.Fatalf("code block line must not wrap: %#v", wrapped)
	}
}

func TestWrapZeroWidthPassthrough(t *testing.T) {
	line := []Segment{{Text: "anything", Style: StylePlain}}
	wrapped := Wrap(line, 0)
	if len(wrapped) != 1 || SegmentsText(wrapped[0]) != "anything" {
		t.Fatalf("zero width must pass through: %#v", wrapped)
	}
}
