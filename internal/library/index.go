package library

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/anoth-dev/mdview/internal/fs"
)

// WriteIndex generates an index.json in folder listing its markdown
// documents in the current display order. Editing the file afterwards
// pins the viewer's tab order.
func WriteIndex(folder string) error {
	entries, err := fs.ListMarkdownFiles(folder)
	if err != nil {
		return err
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	manifest := struct {
		Entries []string `json:"entries"`
	}{Entries: labels}

	data, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(folder, fs.IndexFileName), append(data, '\n'), 0o644)
}
