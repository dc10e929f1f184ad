package markdown

// SpanKind identifies the variant of a Span.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanEmphasis
	SpanStrong
	SpanStrongEmphasis
	SpanCode
	SpanLink
	SpanCodeBlock
)

// Span is a styled run of text within one block. Text holds the content
// (the link label for SpanLink), URL is set for SpanLink only, and Lines
// is set for SpanCodeBlock only.
type Span struct {
	Kind  SpanKind
	Text  string
	URL   string
	Lines []string
}

// Format scans one block's text left to right and produces an ordered
// span sequence. Every input character lands in exactly one span;
// delimiters without a matching closer are re-emitted literally and the
// scan advances by a single character, so the function cannot fail and
// always makes forward progress.
//
// Matched delimiter interiors are taken verbatim: `**a *b* c**` yields a
// strong span containing literal asterisks, not nested emphasis.
func Format(text string) []Span {
	runes := []rune(text)
	var spans []Span
	var plain []rune

	flush := func() {
		if len(plain) == 0 {
			return
		}
		spans = append(spans, Span{Kind: SpanText, Text: string(plain)})
		plain = plain[:0]
	}

	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '*':
			width := runLength(runes[i:], '*')
			if width > 3 {
				width = 3
			}
			matched := false
			for w := width; w >= 1; w-- {
				// Closer must leave at least one content rune, so an
				// unclosed "**bold" stays literal instead of matching
				// the opener against its own second asterisk.
				close := findRun(runes, i+w+1, '*', w)
				if close < 0 {
					continue
				}
				flush()
				spans = append(spans, Span{Kind: emphasisKind(w), Text: string(runes[i+w : close])})
				i = close + w
				matched = true
				break
			}
			if !matched {
				plain = append(plain, '*')
				i++
			}
		case '`':
			close := indexRune(runes, i+2, '`')
			if close < 0 {
				plain = append(plain, '`')
				i++
				continue
			}
			flush()
			spans = append(spans, Span{Kind: SpanCode, Text: string(runes[i+1 : close])})
			i = close + 1
		case '[':
			label, url, next, ok := scanLink(runes, i)
			if !ok {
				plain = append(plain, '[')
				i++
				continue
			}
			flush()
			spans = append(spans, Span{Kind: SpanLink, Text: label, URL: url})
			i = next
		default:
			plain = append(plain, runes[i])
			i++
		}
	}

	flush()
	return spans
}

func emphasisKind(width int) SpanKind {
	switch width {
	case 3:
		return SpanStrongEmphasis
	case 2:
		return SpanStrong
	default:
		return SpanEmphasis
	}
}

// scanLink recognizes [label](url) with both parts contiguous. The label
// ends at the first ']' and the url at the first ')'.
func scanLink(runes []rune, start int) (label, url string, next int, ok bool) {
	closeBracket := indexRune(runes, start+1, ']')
	if closeBracket < 0 || closeBracket+1 >= len(runes) || runes[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := indexRune(runes, closeBracket+2, ')')
	if closeParen < 0 {
		return "", "", 0, false
	}
	label = string(runes[start+1 : closeBracket])
	url = string(runes[closeBracket+2 : closeParen])
	return label, url, closeParen + 1, true
}

// findRun returns the first index at or after start where target repeats
// at least count times, or -1.
func findRun(runes []rune, start int, target rune, count int) int {
	for i := start; i < len(runes); i++ {
		if runes[i] != target {
			continue
		}
		if runLength(runes[i:], target) >= count {
			return i
		}
	}
	return -1
}

func indexRune(runes []rune, start int, target rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

func runLength(runes []rune, target rune) int {
	n := 0
	for n < len(runes) && runes[n] == target {
		n++
	}
	return n
}
