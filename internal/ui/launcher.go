package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/anoth-dev/mdview/internal/library"
	"github.com/anoth-dev/mdview/internal/textutil"
)

// launcherItem is one openable entry on the launcher screen.
type launcherItem struct {
	label   string
	path    string
	archive bool
}

// launcher lists the library's saved folders and packed archives.
type launcher struct {
	screen   tcell.Screen
	theme    ColorTheme
	items    []launcherItem
	selected int
	status   string
}

func newLauncher(screen tcell.Screen) *launcher {
	l := &launcher{screen: screen, theme: GetColorTheme()}
	l.reload()
	return l
}

func (l *launcher) reload() {
	lib, err := library.CleanMissing()
	if err != nil {
		lib = library.Load()
	}

	items := make([]launcherItem, 0, len(lib.Folders))
	for _, folder := range lib.Folders {
		items = append(items, launcherItem{label: folder, path: folder})
	}
	archives, err := library.ListArchives()
	if err == nil {
		for _, archive := range archives {
			if !library.IsArchive(archive) {
				continue
			}
			items = append(items, launcherItem{
				label:   library.ArchiveName(archive),
				path:    archive,
				archive: true,
			})
		}
	}
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// run shows the launcher until the user opens an item or quits. The
// second result is false when the user quit.
func (l *launcher) run() (launcherItem, bool) {
	l.draw()
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return launcherItem{}, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			l.screen.Sync()
		case *tcell.EventKey:
			item, done, quit := l.handleKey(ev)
			if quit {
				return launcherItem{}, false
			}
			if done {
				return item, true
			}
		}
		l.draw()
	}
}

func (l *launcher) handleKey(ev *tcell.EventKey) (launcherItem, bool, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return launcherItem{}, false, true
	case tcell.KeyUp:
		l.move(-1)
	case tcell.KeyDown:
		l.move(1)
	case tcell.KeyEnter:
		if len(l.items) > 0 {
			return l.items[l.selected], true, false
		}
	}

	switch ev.Rune() {
	case 'q':
		return launcherItem{}, false, true
	case 'k':
		l.move(-1)
	case 'j':
		l.move(1)
	case 'd':
		l.removeSelected()
	}
	return launcherItem{}, false, false
}

func (l *launcher) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.selected += delta
	if l.selected < 0 {
		l.selected = 0
	}
	if l.selected >= len(l.items) {
		l.selected = len(l.items) - 1
	}
}

// removeSelected forgets a folder from the library, or deletes the
// archive file for archive entries.
func (l *launcher) removeSelected() {
	if len(l.items) == 0 {
		return
	}
	item := l.items[l.selected]
	if item.archive {
		if err := os.Remove(item.path); err != nil {
			l.status = fmt.Sprintf("delete failed: %v", err)
			return
		}
		l.status = "deleted " + filepath.Base(item.path)
	} else {
		lib := library.Load()
		kept := lib.Folders[:0]
		for _, folder := range lib.Folders {
			if folder != item.path {
				kept = append(kept, folder)
			}
		}
		lib.Folders = kept
		if err := lib.Save(); err != nil {
			l.status = fmt.Sprintf("remove failed: %v", err)
			return
		}
		l.status = "removed " + item.path
	}
	l.reload()
}

func (l *launcher) draw() {
	w, h := l.screen.Size()
	l.screen.Clear()

	headerStyle := tcell.StyleDefault.Background(l.theme.TabBarBg).Foreground(l.theme.TabBarFg).Bold(true)
	x := l.drawText(0, 0, w, " mdview library ", headerStyle)
	for x < w {
		l.screen.SetContent(x, 0, ' ', nil, headerStyle)
		x++
	}

	normalStyle := tcell.StyleDefault.Background(l.theme.Background).Foreground(l.theme.Foreground)
	selectedStyle := tcell.StyleDefault.Background(l.theme.TabActiveBg).Foreground(l.theme.TabActiveFg)
	archiveStyle := normalStyle.Foreground(l.theme.CodeFg)

	if len(l.items) == 0 {
		l.drawText(1, 2, w, "library is empty; run mdview with a folder to view it", normalStyle.Dim(true))
	}

	bottom := h - 1
	for i, item := range l.items {
		y := i + 1
		if y >= bottom {
			break
		}
		style := normalStyle
		if item.archive {
			style = archiveStyle
		}
		marker := "  "
		if i == l.selected {
			style = selectedStyle
			marker = "> "
		}
		label := item.label
		if item.archive {
			label += " [archive]"
		}
		x := l.drawText(0, y, w, marker+textutil.Truncate(label, w-3, "…"), style)
		if i == l.selected {
			for x < w {
				l.screen.SetContent(x, y, ' ', nil, style)
				x++
			}
		}
	}

	footerStyle := tcell.StyleDefault.Background(l.theme.FooterBg).Foreground(l.theme.FooterFg).Dim(true)
	text := "enter open · d remove · q quit"
	if l.status != "" {
		text = l.status
		footerStyle = footerStyle.Dim(false).Foreground(l.theme.StatusFg)
	}
	x = l.drawText(0, h-1, w, textutil.Truncate(text, w, "…"), footerStyle)
	for x < w {
		l.screen.SetContent(x, h-1, ' ', nil, footerStyle)
		x++
	}

	l.screen.Show()
}

func (l *launcher) drawText(x, y, maxX int, text string, style tcell.Style) int {
	return drawText(l.screen, x, y, maxX, text, style)
}
