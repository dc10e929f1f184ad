package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/anoth-dev/mdview/internal/fs"
	"github.com/anoth-dev/mdview/internal/library"
	"github.com/anoth-dev/mdview/internal/render"
	"github.com/anoth-dev/mdview/internal/ui"
)

const defaultWidth = 80

func main() {
	var (
		printMode  bool
		widthFlag  int
		themeName  string
		osc8Flag   string
		listThemes bool
		saveMode   bool
		initIndex  bool
	)

	flags := pflag.NewFlagSet("mdview", pflag.ExitOnError)
	flags.BoolVarP(&printMode, "print", "p", false, "Render ANSI to stdout instead of opening the viewer")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width for --print (0 uses terminal width if available)")
	flags.StringVarP(&themeName, "theme", "t", "", "Theme name for --print")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks for --print: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&saveMode, "save", false, "Pack the folder into the library storage and exit")
	flags.BoolVar(&initIndex, "init-index", false, "Write index.json for the folder and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mdview [flags] [folder | archive.mdlz | file.md]")
		fmt.Fprintln(os.Stderr, "\nWithout a path, mdview opens the library launcher.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range render.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	path := ""
	if args := flags.Args(); len(args) > 0 {
		path = args[0]
	}

	switch {
	case saveMode:
		requirePath(flags, path)
		zipPath, err := library.PackToStorage(path)
		if err != nil {
			fail("save: %v", err)
		}
		if err := library.AddFolder(path); err != nil {
			fail("save: %v", err)
		}
		fmt.Fprintln(os.Stdout, zipPath)
	case initIndex:
		requirePath(flags, path)
		if err := library.WriteIndex(path); err != nil {
			fail("init-index: %v", err)
		}
	case printMode:
		requirePath(flags, path)
		if err := printPath(path, widthFlag, themeName, osc8Flag); err != nil {
			fail("print: %v", err)
		}
	default:
		if err := ui.Run(path); err != nil {
			fail("%v", err)
		}
	}
}

func requirePath(flags *pflag.FlagSet, path string) {
	if path == "" {
		flags.Usage()
		os.Exit(2)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// printPath renders a markdown file, every document of a folder, or the
// contents of an archive as ANSI on stdout.
func printPath(path string, widthFlag int, themeName, osc8Flag string) error {
	theme, ok := render.ThemeByName(themeName)
	if !ok {
		return fmt.Errorf("unknown theme %q (see --list-themes)", themeName)
	}
	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		return fmt.Errorf("invalid --osc8 %q: %w", osc8Flag, err)
	}
	width := resolveWidth(widthFlag)

	if library.IsArchivePath(path) {
		dir, err := library.UnpackToTemp(path)
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
		return printFolder(dir, width, theme, osc8)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return printFolder(path, width, theme, osc8)
	}
	return printFile(path, width, theme, osc8)
}

func printFolder(folder string, width int, theme render.Theme, osc8 bool) error {
	entries, err := fs.ListMarkdownFiles(folder)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no markdown documents in %s", folder)
	}
	for i, entry := range entries {
		if i > 0 {
			fmt.Println()
		}
		if len(entries) > 1 {
			fmt.Printf("== %s ==\n\n", entry.Label)
		}
		if err := printFile(entry.Path, width, theme, osc8); err != nil {
			return err
		}
	}
	return nil
}

func printFile(path string, width int, theme render.Theme, osc8 bool) error {
	document, err := fs.ReadDocument(path)
	if err != nil {
		return err
	}
	return render.Write(os.Stdout, document, width, theme, render.WithOSC8(osc8))
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return render.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}
