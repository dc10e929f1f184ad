package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/anoth-dev/mdview/internal/fs"
	"github.com/anoth-dev/mdview/internal/library"
)

const contentMargin = 1

// Viewer shows the markdown documents of one folder as tabs.
type Viewer struct {
	screen  tcell.Screen
	theme   ColorTheme
	title   string
	source  string
	archive bool

	tabs    []*Tab
	current int
	status  string

	openURL    func(string) error
	shouldQuit bool
}

// NewViewer loads every markdown document under folder into a tab.
// Documents that cannot be decoded as text are skipped.
func NewViewer(screen tcell.Screen, folder, title string, archive bool) (*Viewer, error) {
	entries, err := fs.ListMarkdownFiles(folder)
	if err != nil {
		return nil, err
	}

	var tabs []*Tab
	for _, entry := range entries {
		document, err := fs.ReadDocument(entry.Path)
		if err != nil {
			continue
		}
		tabs = append(tabs, newTab(entry.Label, entry.Path, document))
	}
	if len(tabs) == 0 {
		return nil, fmt.Errorf("no markdown documents in %s", folder)
	}

	return &Viewer{
		screen:  screen,
		theme:   GetColorTheme(),
		title:   title,
		source:  folder,
		archive: archive,
		tabs:    tabs,
		openURL: openBrowser,
	}, nil
}

func (v *Viewer) Run() error {
	v.draw()
	for !v.shouldQuit {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.handleEvent(ev) {
			v.draw()
		}
	}
	return nil
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		return true
	case *tcell.EventMouse:
		return v.handleMouse(ev)
	default:
		return false
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	visible := v.contentHeight()
	tab := v.tabs[v.current]
	v.status = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.shouldQuit = true
		return false
	case tcell.KeyTab, tcell.KeyRight:
		v.current = (v.current + 1) % len(v.tabs)
		return true
	case tcell.KeyBacktab, tcell.KeyLeft:
		v.current = (v.current + len(v.tabs) - 1) % len(v.tabs)
		return true
	case tcell.KeyUp:
		tab.scrollBy(-1, visible)
		return true
	case tcell.KeyDown:
		tab.scrollBy(1, visible)
		return true
	case tcell.KeyPgUp:
		tab.scrollBy(-visible, visible)
		return true
	case tcell.KeyPgDn:
		tab.scrollBy(visible, visible)
		return true
	case tcell.KeyHome:
		tab.scrollTo(0, visible)
		return true
	case tcell.KeyEnd:
		tab.scrollTo(len(tab.lines), visible)
		return true
	}

	switch ev.Rune() {
	case 'q':
		v.shouldQuit = true
		return false
	case 'j':
		tab.scrollBy(1, visible)
		return true
	case 'k':
		tab.scrollBy(-1, visible)
		return true
	case 'g':
		tab.scrollTo(0, visible)
		return true
	case 'G':
		tab.scrollTo(len(tab.lines), visible)
		return true
	case 's':
		v.saveArchive()
		return true
	case 'i':
		v.writeIndex()
		return true
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	visible := v.contentHeight()
	tab := v.tabs[v.current]

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		tab.scrollBy(-3, visible)
		return true
	case ev.Buttons()&tcell.WheelDown != 0:
		tab.scrollBy(3, visible)
		return true
	case ev.Buttons()&tcell.Button1 != 0:
		if y == 0 {
			return v.handleTabBarClick(x)
		}
		row := tab.scroll + (y - 1)
		if url, ok := tab.linkAt(row, x-contentMargin); ok {
			if err := v.openURL(url); err != nil {
				v.status = fmt.Sprintf("cannot open link: %v", err)
			} else {
				v.status = "opening " + url
			}
			return true
		}
	}
	return false
}

func (v *Viewer) handleTabBarClick(x int) bool {
	labels := make([]string, len(v.tabs))
	for i, tab := range v.tabs {
		labels[i] = tab.Label
	}
	w, _ := v.screen.Size()
	first := tabBarOffset(labels, v.current, w)

	pos := 0
	for i := first; i < len(labels); i++ {
		width := runewidth.StringWidth(tabCell(labels[i]))
		if x >= pos && x < pos+width {
			v.current = i
			return true
		}
		pos += width
	}
	return false
}

func (v *Viewer) saveArchive() {
	if v.archive {
		v.status = "already an archive"
		return
	}
	zipPath, err := library.PackToStorage(v.source)
	if err != nil {
		v.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	if err := library.AddFolder(v.source); err != nil {
		v.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	v.status = "saved " + zipPath
}

func (v *Viewer) writeIndex() {
	if err := library.WriteIndex(v.source); err != nil {
		v.status = fmt.Sprintf("index failed: %v", err)
		return
	}
	v.status = "wrote " + fs.IndexFileName
}

func (v *Viewer) contentHeight() int {
	_, h := v.screen.Size()
	if h <= 2 {
		return 1
	}
	return h - 2
}
