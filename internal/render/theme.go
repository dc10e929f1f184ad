package render

import (
	"sort"
	"strings"
)

// ANSI attribute prefixes shared by the builtin themes.
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
	ansiFaint     = "\x1b[2m"

	ansiCyan    = "\x1b[36m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiYellow  = "\x1b[33m"
)

// Style is a terminal style expressed as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the ANSI writer.
type Styles struct {
	Text           Style
	Heading        [3]Style
	Emphasis       Style
	Strong         Style
	StrongEmphasis Style
	CodeInline     Style
	CodeBlock      Style
	LinkText       Style
	LinkURL        Style
}

// Theme provides named styles for ANSI output.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Text:           style(),
		Heading:        [3]Style{style(ansiBold, ansiUnderline), style(ansiBold), style(ansiBold, ansiFaint)},
		Emphasis:       style(ansiItalic),
		Strong:         style(ansiBold),
		StrongEmphasis: style(ansiBold, ansiItalic),
		CodeInline:     style(ansiCyan),
		CodeBlock:      style(ansiFaint),
		LinkText:       style(ansiUnderline, ansiBlue),
		LinkURL:        style(ansiFaint, ansiBlue),
	}},
	"vivid": theme{name: "vivid", styles: Styles{
		Text:           style(),
		Heading:        [3]Style{style(ansiBold, ansiMagenta), style(ansiBold, ansiBlue), style(ansiBold, ansiCyan)},
		Emphasis:       style(ansiItalic, ansiYellow),
		Strong:         style(ansiBold, ansiYellow),
		StrongEmphasis: style(ansiBold, ansiItalic, ansiYellow),
		CodeInline:     style(ansiCyan),
		CodeBlock:      style(ansiCyan),
		LinkText:       style(ansiUnderline, ansiBlue),
		LinkURL:        style(ansiFaint, ansiBlue),
	}},
	"mono": theme{name: "mono", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. An empty name selects
// the default theme.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

func (s Styles) forKind(kind StyleKind) Style {
	switch kind {
	case StyleEmphasis:
		return s.Emphasis
	case StyleStrong:
		return s.Strong
	case StyleStrongEmphasis:
		return s.StrongEmphasis
	case StyleCode:
		return s.CodeInline
	case StyleCodeBlock:
		return s.CodeBlock
	case StyleLink:
		return s.LinkText
	case StyleHeading1:
		return s.Heading[0]
	case StyleHeading2:
		return s.Heading[1]
	case StyleHeading3:
		return s.Heading[2]
	default:
		return s.Text
	}
}
