// Package markdown converts raw Markdown text into block structures and
// styled spans. It handles the subset used by the viewer: ATX headings,
// fenced code blocks, paragraphs, and the inline constructs emphasis,
// strong, strong-emphasis, inline code, and links.
//
// Both Segment and Format are total: malformed input never fails, it
// degrades to the most literal interpretation.
package markdown

import "strings"

// MaxHeadingLevel is the deepest heading level the viewer styles.
// Deeper ATX headings still parse and are clamped to this level.
const MaxHeadingLevel = 3

const fenceIndentLimit = 3

// BlockKind identifies the variant of a Block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockCode
)

// Block is one top-level structural unit of a document.
type Block interface {
	Kind() BlockKind
}

// Heading is a single-line ATX heading.
type Heading struct {
	Level int
	Text  string
}

func (Heading) Kind() BlockKind { return BlockHeading }

// Paragraph is a run of consecutive non-blank lines joined by newlines.
type Paragraph struct {
	Text string
}

func (Paragraph) Kind() BlockKind { return BlockParagraph }

// CodeBlock holds the verbatim lines between a pair of code fences.
// Its lines are never scanned for inline constructs.
type CodeBlock struct {
	Lines []string
}

func (CodeBlock) Kind() BlockKind { return BlockCode }

// Segment splits a document into an ordered sequence of blocks.
// Blank lines separate blocks and are discarded. A fence opened but
// never closed yields a CodeBlock covering the rest of the input.
func Segment(document string) []Block {
	if document == "" {
		return nil
	}
	document = strings.ReplaceAll(document, "\r\n", "\n")
	lines := strings.Split(document, "\n")

	var blocks []Block
	var para []string
	var code []string
	inFence := false

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, Paragraph{Text: strings.Join(para, "\n")})
		para = nil
	}

	for _, line := range lines {
		if inFence {
			if isFenceLine(line) {
				blocks = append(blocks, CodeBlock{Lines: code})
				code = nil
				inFence = false
				continue
			}
			code = append(code, line)
			continue
		}

		if isFenceLine(line) {
			flushPara()
			inFence = true
			continue
		}

		if level, text, ok := parseHeading(line); ok {
			flushPara()
			blocks = append(blocks, Heading{Level: level, Text: text})
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushPara()
			continue
		}

		para = append(para, line)
	}

	if inFence {
		blocks = append(blocks, CodeBlock{Lines: code})
	}
	flushPara()
	return blocks
}

// isFenceLine reports whether line toggles fence state: a run of at
// least three backticks after at most three leading spaces. Trailing
// text (an info string) is allowed and ignored.
func isFenceLine(line string) bool {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > fenceIndentLimit {
		return false
	}
	rest := line[indent:]
	ticks := 0
	for ticks < len(rest) && rest[ticks] == '`' {
		ticks++
	}
	return ticks >= 3
}

// parseHeading matches a run of '#' followed by whitespace. Runs deeper
// than MaxHeadingLevel clamp rather than degrade to a paragraph.
func parseHeading(line string) (int, string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level >= len(trimmed) {
		return 0, "", false
	}
	if trimmed[level] != ' ' && trimmed[level] != '\t' {
		return 0, "", false
	}
	text := strings.TrimSpace(trimmed[level:])
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return level, text, true
}
