package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/anoth-dev/mdview/internal/render"
)

// ColorTheme defines the viewer's screen colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	TabBarBg    tcell.Color
	TabBarFg    tcell.Color
	TabActiveBg tcell.Color
	TabActiveFg tcell.Color
	HeadingFg   tcell.Color
	CodeBg      tcell.Color
	CodeFg      tcell.Color
	CodeBlockBg tcell.Color
	CodeBlockFg tcell.Color
	LinkFg      tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	StatusFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		TabBarBg:    tcell.Color236,
		TabBarFg:    tcell.Color250,
		TabActiveBg: tcell.Color33,
		TabActiveFg: tcell.ColorWhite,
		HeadingFg:   tcell.Color33,
		CodeBg:      tcell.ColorDefault,
		CodeFg:      tcell.Color44,  // brighter cyan text for inline code
		CodeBlockBg: tcell.Color234, // darker grey background for fenced code
		CodeBlockFg: tcell.Color252, // light grey text for fenced code
		LinkFg:      tcell.Color39,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		StatusFg:    tcell.Color214,
	}
}

// styleFor maps a semantic segment style onto a tcell style.
func (t ColorTheme) styleFor(kind render.StyleKind) tcell.Style {
	base := tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
	switch kind {
	case render.StyleEmphasis:
		return base.Italic(true)
	case render.StyleStrong:
		return base.Bold(true)
	case render.StyleStrongEmphasis:
		return base.Bold(true).Italic(true)
	case render.StyleCode:
		return tcell.StyleDefault.Background(t.CodeBg).Foreground(t.CodeFg)
	case render.StyleCodeBlock:
		return tcell.StyleDefault.Background(t.CodeBlockBg).Foreground(t.CodeBlockFg)
	case render.StyleLink:
		return base.Foreground(t.LinkFg).Underline(true)
	case render.StyleHeading1:
		return base.Foreground(t.HeadingFg).Bold(true).Underline(true)
	case render.StyleHeading2:
		return base.Foreground(t.HeadingFg).Bold(true)
	case render.StyleHeading3:
		return base.Foreground(t.HeadingFg)
	default:
		return base
	}
}
