package library

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Pack compresses the files under folder into a zip archive at zipPath.
// Entries use slash-separated paths relative to folder.
func Pack(folder, zipPath string) error {
	folder, err := filepath.Abs(folder)
	if err != nil {
		return err
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("pack %s: %w", folder, err)
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return out.Close()
}

// Unpack extracts the zip archive at zipPath into dest, which is
// created when missing. Entries escaping dest are rejected.
func Unpack(zipPath, dest string) error {
	dest, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", zipPath, err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if err := extractFile(file, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, dest string) error {
	target, err := sanitizeExtractPath(file.Name, dest)
	if err != nil {
		return err
	}
	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func sanitizeExtractPath(name, dest string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return target, nil
}

// UnpackToTemp extracts zipPath into a fresh temporary directory and
// returns its path. The caller owns the cleanup.
func UnpackToTemp(zipPath string) (string, error) {
	dir, err := os.MkdirTemp("", "mdview-*")
	if err != nil {
		return "", err
	}
	if err := Unpack(zipPath, dir); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	return dir, nil
}

// PackToStorage packs folder into the library storage dir, naming the
// archive after the flattened absolute folder path. Returns the archive
// path.
func PackToStorage(folder string) (string, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", err
	}
	stem, err := FlattenPath(filepath.ToSlash(abs))
	if err != nil {
		return "", err
	}
	storage, err := StorageDir()
	if err != nil {
		return "", err
	}
	zipPath := filepath.Join(storage, stem+"."+Extension)
	if err := Pack(abs, zipPath); err != nil {
		return "", err
	}
	return zipPath, nil
}
