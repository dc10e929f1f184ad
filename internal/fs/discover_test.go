package fs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestListMarkdownFilesRecursiveSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.md"), []byte("# b"))
	writeFile(t, filepath.Join(root, "a.md"), []byte("# a"))
	writeFile(t, filepath.Join(root, "sub", "c.markdown"), []byte("# c"))
	writeFile(t, filepath.Join(root, "notes.txt"), []byte("skip me"))

	entries, err := ListMarkdownFiles(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a.md", "b.md", "sub/c.markdown"}
	if !reflect.DeepEqual(labels(entries), want) {
		t.Fatalf("labels = %v, want %v", labels(entries), want)
	}
}

func TestListMarkdownFilesSkipsDotDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "visible.md"), []byte("x"))
	writeFile(t, filepath.Join(root, ".git", "hidden.md"), []byte("x"))

	entries, err := ListMarkdownFiles(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Label != "visible.md" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestListMarkdownFilesEmptyFolder(t *testing.T) {
	entries, err := ListMarkdownFiles(t.TempDir())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", labels(entries))
	}
}

func TestListMarkdownFilesHonorsIndexOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), []byte("# a"))
	writeFile(t, filepath.Join(root, "b.md"), []byte("# b"))
	writeFile(t, filepath.Join(root, "c.md"), []byte("# c"))
	writeFile(t, filepath.Join(root, IndexFileName), []byte(`{"entries": ["c.md", "a.md", "missing.md"]}`))

	entries, err := ListMarkdownFiles(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Indexed entries first in manifest order, the rest appended sorted.
	want := []string{"c.md", "a.md", "b.md"}
	if !reflect.DeepEqual(labels(entries), want) {
		t.Fatalf("labels = %v, want %v", labels(entries), want)
	}
}

func TestListMarkdownFilesIgnoresBrokenIndex(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), []byte("# a"))
	writeFile(t, filepath.Join(root, IndexFileName), []byte("{not json"))

	entries, err := ListMarkdownFiles(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(labels(entries), []string{"a.md"}) {
		t.Fatalf("labels = %v", labels(entries))
	}
}

func TestReadDocumentUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, []byte("# Héllo\n"))

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "# Héllo\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReadDocumentStripsUTF8BOM(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, append([]byte{0xEF, 0xBB, 0xBF}, []byte("# H")...))

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "# H" {
		t.Fatalf("BOM not stripped: %q", got)
	}
}

func TestReadDocumentDecodesUTF16LE(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	// "# H" as UTF-16LE with BOM.
	writeFile(t, path, []byte{0xFF, 0xFE, '#', 0x00, ' ', 0x00, 'H', 0x00})

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "# H" {
		t.Fatalf("UTF-16 not decoded: %q", got)
	}
}

func TestReadDocumentRejectsBinary(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, []byte{'a', 0x00, 'b', 0x01})

	if _, err := ReadDocument(path); err == nil {
		t.Fatalf("expected error for binary content")
	}
}

func TestIsMarkdownFile(t *testing.T) {
	cases := map[string]bool{
		"a.md":       true,
		"A.MD":       true,
		"b.markdown": true,
		"c.txt":      false,
		"noext":      false,
	}
	for path, want := range cases {
		if got := IsMarkdownFile(path); got != want {
			t.Fatalf("IsMarkdownFile(%q) = %v", path, got)
		}
	}
}
