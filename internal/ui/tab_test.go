package ui

import (
	"testing"
)

func TestTabLinkRegions(t *testing.T) {
	tab := newTab("doc", "/tmp/doc.md", "Visit [docs](https://example.com) now")
	tab.layout(60)

	if len(tab.lines) != 1 {
		t.Fatalf("expected one display line, got %d", len(tab.lines))
	}
	// "Visit " occupies columns 0..5, the link label starts at 6.
	url, ok := tab.linkAt(0, 6)
	if !ok || url != "https://example.com" {
		t.Fatalf("linkAt(0,6) = (%q,%v)", url, ok)
	}
	if _, ok := tab.linkAt(0, 3); ok {
		t.Fatalf("plain text should not resolve to a link")
	}
	if _, ok := tab.linkAt(1, 6); ok {
		t.Fatalf("row without a link should not resolve")
	}
}

func TestTabLayoutCleansCodeTabs(t *testing.T) {
	tab := newTab("doc", "", "```\na\tb\n```")
	tab.layout(60)

	if len(tab.lines) != 1 {
		t.Fatalf("expected one line, got %d", len(tab.lines))
	}
	if got := tab.lines[0][0].Text; got != "a   b" {
		t.Fatalf("expected expanded tab, got %q", got)
	}
}

func TestTabLayoutCachedPerWidth(t *testing.T) {
	tab := newTab("doc", "", "alpha beta gamma delta")
	tab.layout(11)
	if len(tab.lines) != 2 {
		t.Fatalf("expected wrap into 2 lines at width 11, got %d", len(tab.lines))
	}
	tab.layout(80)
	if len(tab.lines) != 1 {
		t.Fatalf("expected relayout at width 80, got %d lines", len(tab.lines))
	}
}

func TestTabScrollClamp(t *testing.T) {
	tab := newTab("doc", "", "a\n\nb\n\nc\n\nd")
	tab.layout(40)
	total := len(tab.lines)
	if total < 4 {
		t.Fatalf("expected several display lines, got %d", total)
	}

	tab.scrollTo(1000, 2)
	if tab.scroll != total-2 {
		t.Fatalf("scroll = %d, want %d", tab.scroll, total-2)
	}
	tab.scrollBy(-1000, 2)
	if tab.scroll != 0 {
		t.Fatalf("scroll = %d, want 0", tab.scroll)
	}
	tab.scrollTo(5, 100)
	if tab.scroll != 0 {
		t.Fatalf("scroll past short content = %d, want 0", tab.scroll)
	}
}

func TestTabBarOffset(t *testing.T) {
	labels := []string{"one", "two", "three", "four"}
	if got := tabBarOffset(labels, 0, 80); got != 0 {
		t.Fatalf("wide bar: offset = %d, want 0", got)
	}
	// Each cell is " label " wide; a narrow bar must slide to keep the
	// current tab visible.
	if got := tabBarOffset(labels, 3, 12); got == 0 {
		t.Fatalf("narrow bar should not start at tab 0")
	}
	if got := tabBarOffset(labels, 3, 6); got != 3 {
		t.Fatalf("tiny bar: offset = %d, want 3", got)
	}
}
