// Package ui is the interactive terminal shell: a tabbed viewer for one
// folder's markdown documents and a launcher over the saved library.
package ui

import (
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/anoth-dev/mdview/internal/library"
)

// Run starts the interactive shell. With a path it opens the viewer on
// that folder or archive directly; without one it shows the launcher
// and returns when the user quits it.
func Run(path string) error {
	// Fall back to UTF-8 so non-ASCII document text survives odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	// Parse mouse sequences so clicks and wheel scrolling reach the viewer.
	screen.EnableMouse()

	if path != "" {
		return openPath(screen, path)
	}

	l := newLauncher(screen)
	for {
		item, ok := l.run()
		if !ok {
			return nil
		}
		if err := openPath(screen, item.path); err != nil {
			l.status = err.Error()
		}
	}
}

// openPath runs a viewer over a folder, or over the extracted contents
// of an .mdlz archive.
func openPath(screen tcell.Screen, path string) error {
	if library.IsArchivePath(path) {
		dir, err := library.UnpackToTemp(path)
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		viewer, err := NewViewer(screen, dir, library.ArchiveName(path), true)
		if err != nil {
			return err
		}
		return viewer.Run()
	}

	viewer, err := NewViewer(screen, path, filepath.Base(path), false)
	if err != nil {
		return err
	}
	return viewer.Run()
}
