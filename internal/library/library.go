// Package library persists the viewer's saved folders and packed
// document archives. The library is a JSON list of folder paths in the
// user config dir, next to a storage directory of .mdlz archives.
package library

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the archive suffix, without the dot.
const Extension = "mdlz"

const appDirName = "mdview"

// Library is the persisted set of saved folders.
type Library struct {
	Folders []string `json:"folders"`
}

// Dir returns the application's config directory, creating it when
// missing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// StorageDir returns the directory holding packed archives, creating it
// when missing.
func StorageDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	storage := filepath.Join(dir, "storage")
	if err := os.MkdirAll(storage, 0o755); err != nil {
		return "", err
	}
	return storage, nil
}

func libraryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "library.json"), nil
}

// Load reads the saved library. A missing or unreadable file yields an
// empty library, never an error surface the launcher has to handle.
func Load() Library {
	path, err := libraryPath()
	if err != nil {
		return Library{}
	}
	return loadFrom(path)
}

func loadFrom(path string) Library {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}
	}
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return Library{}
	}
	return lib
}

// Save writes the library back to disk, matching the original indented
// on-disk format.
func (lib Library) Save() error {
	path, err := libraryPath()
	if err != nil {
		return err
	}
	return lib.saveTo(path)
}

func (lib Library) saveTo(path string) error {
	data, err := json.MarshalIndent(lib, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// AddFolder records a folder in the library. Already-present folders are
// not duplicated.
func AddFolder(folder string) error {
	path, err := libraryPath()
	if err != nil {
		return err
	}
	lib := loadFrom(path)
	if !lib.contains(folder) {
		lib.Folders = append(lib.Folders, folder)
		return lib.saveTo(path)
	}
	return nil
}

func (lib Library) contains(folder string) bool {
	for _, f := range lib.Folders {
		if f == folder {
			return true
		}
	}
	return false
}

// CleanMissing drops folders that no longer exist on disk and persists
// the result when anything changed.
func CleanMissing() (Library, error) {
	path, err := libraryPath()
	if err != nil {
		return Library{}, err
	}
	lib := loadFrom(path)
	kept := lib.Folders[:0]
	for _, folder := range lib.Folders {
		if _, err := os.Stat(folder); err == nil {
			kept = append(kept, folder)
		}
	}
	if len(kept) != len(lib.Folders) {
		lib.Folders = kept
		if err := lib.saveTo(path); err != nil {
			return lib, err
		}
	}
	return lib, nil
}

// ListArchives returns the stored archive paths sorted by name.
func ListArchives() ([]string, error) {
	storage, err := StorageDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(storage)
	if err != nil {
		return nil, err
	}
	var archives []string
	for _, entry := range entries {
		if entry.IsDir() || !IsArchivePath(entry.Name()) {
			continue
		}
		archives = append(archives, filepath.Join(storage, entry.Name()))
	}
	sort.Strings(archives)
	return archives, nil
}

// IsArchivePath reports whether path carries the archive extension.
// The check is case-insensitive.
func IsArchivePath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), "."+Extension)
}

// IsArchive reports whether path names a readable archive: the
// extension matches and the file starts with the zip magic.
func IsArchive(path string) bool {
	if !IsArchivePath(path) {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [2]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return false
	}
	return magic[0] == 'P' && magic[1] == 'K'
}

// ArchiveName returns the display name of a stored archive: its file
// name without the extension.
func ArchiveName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
