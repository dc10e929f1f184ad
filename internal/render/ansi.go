package render

import (
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/anoth-dev/mdview/internal/markdown"
)

const codeBlockIndent = 4

// Option configures the ANSI writer.
type Option func(*writeConfig)

type writeConfig struct {
	osc8 bool
}

// WithOSC8 enables OSC 8 hyperlinks in the ANSI output.
func WithOSC8(enabled bool) Option {
	return func(cfg *writeConfig) {
		cfg.osc8 = enabled
	}
}

// Write renders a whole document as ANSI text. Headings and paragraphs
// are word-wrapped to width; code block lines are emitted verbatim with
// a fixed indent and never wrapped.
func Write(w io.Writer, document string, width int, t Theme, opts ...Option) error {
	cfg := writeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if t == nil {
		t = DefaultTheme()
	}
	styles := t.Styles()

	blocks := markdown.Segment(document)
	for idx, block := range blocks {
		if idx > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeBlock(w, block, width, styles, cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeBlock(w io.Writer, block markdown.Block, width int, styles Styles, cfg writeConfig) error {
	switch b := block.(type) {
	case markdown.CodeBlock:
		return writeCodeBlock(w, b.Lines, styles)
	case markdown.Heading:
		return writeStyledText(w, markdown.Format(b.Text), headingStyle(b.Level), width, styles, cfg)
	case markdown.Paragraph:
		return writeStyledText(w, markdown.Format(b.Text), StylePlain, width, styles, cfg)
	default:
		return nil
	}
}

func writeCodeBlock(w io.Writer, lines []string, styles Styles) error {
	prefix := styles.CodeBlock.Prefix
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	body := indent.String(b.String(), codeBlockIndent)
	for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		if _, err := io.WriteString(w, prefix+line+reset(prefix)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeStyledText(w io.Writer, spans []markdown.Span, base StyleKind, width int, styles Styles, cfg writeConfig) error {
	var b strings.Builder
	for _, seg := range spanSegments(spans, base) {
		prefix := styles.forKind(seg.Style).Prefix
		if seg.Style == StyleLink {
			writeLink(&b, seg, styles, cfg)
			continue
		}
		b.WriteString(prefix)
		b.WriteString(seg.Text)
		b.WriteString(reset(prefix))
	}
	out := b.String()
	if width > 0 {
		// wordwrap is ANSI-aware, so style prefixes cost no columns.
		out = wordwrap.String(out, width)
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

func writeLink(b *strings.Builder, seg Segment, styles Styles, cfg writeConfig) {
	textPrefix := styles.LinkText.Prefix
	if cfg.osc8 && seg.URL != "" {
		b.WriteString(osc8Start + seg.URL + "\x1b\\")
		b.WriteString(textPrefix)
		b.WriteString(seg.Text)
		b.WriteString(reset(textPrefix))
		b.WriteString(osc8End)
		return
	}
	b.WriteString(textPrefix)
	b.WriteString(seg.Text)
	b.WriteString(reset(textPrefix))
	if seg.URL != "" {
		urlPrefix := styles.LinkURL.Prefix
		b.WriteString(" (")
		b.WriteString(urlPrefix)
		b.WriteString(seg.URL)
		b.WriteString(reset(urlPrefix))
		b.WriteString(")")
	}
}

func reset(prefix string) string {
	if prefix == "" {
		return ""
	}
	return ansiReset
}
