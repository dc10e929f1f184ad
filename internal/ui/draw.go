package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/anoth-dev/mdview/internal/textutil"
)

func (v *Viewer) draw() {
	w, h := v.screen.Size()
	v.screen.Clear()

	tab := v.tabs[v.current]
	tab.layout(v.contentWidth(w))
	tab.clampScroll(v.contentHeight())

	v.drawTabBar(w)
	v.drawContent(tab, w, h)
	v.drawFooter(w, h)
	v.screen.Show()
}

func (v *Viewer) contentWidth(w int) int {
	width := w - 2*contentMargin
	if width < 1 {
		width = 1
	}
	return width
}

// tabCell is the text a tab occupies in the bar.
func tabCell(label string) string {
	return " " + textutil.Truncate(label, 24, "…") + " "
}

// tabBarOffset picks the first visible tab so the current one fits in
// width columns.
func tabBarOffset(labels []string, current, width int) int {
	first := 0
	for first < current {
		used := 0
		for i := first; i <= current; i++ {
			used += runewidth.StringWidth(tabCell(labels[i]))
		}
		if used <= width {
			break
		}
		first++
	}
	return first
}

func (v *Viewer) drawTabBar(w int) {
	barStyle := tcell.StyleDefault.Background(v.theme.TabBarBg).Foreground(v.theme.TabBarFg)
	activeStyle := tcell.StyleDefault.Background(v.theme.TabActiveBg).Foreground(v.theme.TabActiveFg).Bold(true)

	labels := make([]string, len(v.tabs))
	for i, tab := range v.tabs {
		labels[i] = tab.Label
	}
	first := tabBarOffset(labels, v.current, w)

	x := 0
	for i := first; i < len(labels) && x < w; i++ {
		style := barStyle
		if i == v.current {
			style = activeStyle
		}
		x = v.drawText(x, 0, w, tabCell(labels[i]), style)
	}
	for x < w {
		v.screen.SetContent(x, 0, ' ', nil, barStyle)
		x++
	}
}

func (v *Viewer) drawContent(tab *Tab, w, h int) {
	bottom := h - 1
	for y := 1; y < bottom; y++ {
		row := tab.scroll + (y - 1)
		if row < 0 || row >= len(tab.lines) {
			continue
		}
		x := contentMargin
		for _, seg := range tab.lines[row] {
			if x >= w {
				break
			}
			x = v.drawText(x, y, w, seg.Text, v.theme.styleFor(seg.Style))
		}
	}
}

func (v *Viewer) drawFooter(w, h int) {
	y := h - 1
	style := tcell.StyleDefault.Background(v.theme.FooterBg).Foreground(v.theme.FooterFg).Dim(true)

	text := v.status
	if text == "" {
		text = v.title + "  ·  tab/arrows switch · j/k scroll · q quit"
		if !v.archive {
			text += " · s save · i index"
		}
	} else {
		style = style.Dim(false).Foreground(v.theme.StatusFg)
	}

	x := v.drawText(0, y, w, textutil.Truncate(text, w, "…"), style)
	for x < w {
		v.screen.SetContent(x, y, ' ', nil, style)
		x++
	}
}

// drawText writes text starting at x and returns the column after the
// last rune drawn. Output stops at maxX.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, ru := range text {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, ru, nil, style)
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		x += width
	}
	return x
}

func (v *Viewer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	return drawText(v.screen, x, y, maxX, text, style)
}
