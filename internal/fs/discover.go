package fs

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IndexFileName is the optional per-folder ordering manifest.
const IndexFileName = "index.json"

var markdownExts = map[string]struct{}{
	".md":       {},
	".markdown": {},
	".mdown":    {},
	".mkd":      {},
	".mkdown":   {},
	".mdwn":     {},
}

// Entry is one discovered markdown document. Label is the
// slash-normalized path relative to the scanned root.
type Entry struct {
	Path  string
	Label string
}

// IsMarkdownFile reports whether path has a markdown extension.
func IsMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := markdownExts[ext]
	return ok
}

// ListMarkdownFiles walks root recursively and returns its markdown
// documents sorted by label. When root/index.json exists, the order it
// lists wins and entries it omits are appended after, so a curated
// index controls tab order without hiding new files.
func ListMarkdownFiles(root string) ([]Entry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			// Dot directories like .git hold no documents worth tabs.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsMarkdownFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Path:  path,
			Label: filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})

	if order, ok := readIndexOrder(root); ok {
		entries = applyIndexOrder(entries, order)
	}
	return entries, nil
}

type indexManifest struct {
	Entries []string `json:"entries"`
}

func readIndexOrder(root string) ([]string, bool) {
	data, err := os.ReadFile(filepath.Join(root, IndexFileName))
	if err != nil {
		return nil, false
	}
	var manifest indexManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, false
	}
	return manifest.Entries, true
}

func applyIndexOrder(entries []Entry, order []string) []Entry {
	byLabel := make(map[string]int, len(entries))
	for i, e := range entries {
		byLabel[e.Label] = i
	}

	seen := make(map[string]bool, len(order))
	ordered := make([]Entry, 0, len(entries))
	for _, label := range order {
		label = filepath.ToSlash(label)
		if idx, ok := byLabel[label]; ok && !seen[label] {
			ordered = append(ordered, entries[idx])
			seen[label] = true
		}
	}
	for _, e := range entries {
		if !seen[e.Label] {
			ordered = append(ordered, e)
		}
	}
	return ordered
}

// ReadDocument loads a markdown file and normalizes its encoding.
// Binary content is rejected rather than rendered as garbage.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !IsTextFile(data) {
		return "", fmt.Errorf("%s: not a text file", path)
	}
	return NormalizeTextContent(data), nil
}
