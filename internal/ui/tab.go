package ui

import (
	"github.com/anoth-dev/mdview/internal/markdown"
	"github.com/anoth-dev/mdview/internal/render"
	"github.com/anoth-dev/mdview/internal/textutil"
)

// Tab holds one open document and its scroll position. Display lines are
// laid out lazily for the current screen width and cached until the
// width changes.
type Tab struct {
	Label string
	Path  string

	blocks []markdown.Block

	layoutWidth int
	lines       [][]render.Segment
	links       []linkRegion
	scroll      int
}

// linkRegion is the column span a link segment occupies on one display
// line, used to resolve mouse clicks.
type linkRegion struct {
	row    int
	x0, x1 int
	url    string
}

func newTab(label, path, document string) *Tab {
	return &Tab{
		Label:  label,
		Path:   path,
		blocks: markdown.Segment(document),
	}
}

func (t *Tab) layout(width int) {
	if width == t.layoutWidth && t.lines != nil {
		return
	}
	t.layoutWidth = width
	t.lines = layoutBlocks(t.blocks, width)
	t.links = collectLinkRegions(t.lines)
}

// layoutBlocks turns blocks into display lines wrapped at width. Tabs
// and control characters are cleaned before wrapping so layout and
// drawing agree on column counts.
func layoutBlocks(blocks []markdown.Block, width int) [][]render.Segment {
	var out [][]render.Segment
	for _, line := range render.Lines(blocks) {
		if line == nil {
			out = append(out, nil)
			continue
		}
		cleaned := make([]render.Segment, len(line))
		for i, seg := range line {
			seg.Text = textutil.CleanLine(seg.Text, textutil.DefaultTabWidth)
			cleaned[i] = seg
		}
		out = append(out, render.Wrap(cleaned, width)...)
	}
	return out
}

func collectLinkRegions(lines [][]render.Segment) []linkRegion {
	var regions []linkRegion
	for row, line := range lines {
		x := 0
		for _, seg := range line {
			w := textutil.DisplayWidth(seg.Text)
			if seg.Style == render.StyleLink && seg.URL != "" {
				regions = append(regions, linkRegion{row: row, x0: x, x1: x + w, url: seg.URL})
			}
			x += w
		}
	}
	return regions
}

// linkAt resolves a display position to a link URL, if any.
func (t *Tab) linkAt(row, x int) (string, bool) {
	for _, region := range t.links {
		if region.row == row && x >= region.x0 && x < region.x1 {
			return region.url, true
		}
	}
	return "", false
}

func (t *Tab) clampScroll(visible int) {
	max := len(t.lines) - visible
	if max < 0 {
		max = 0
	}
	if t.scroll > max {
		t.scroll = max
	}
	if t.scroll < 0 {
		t.scroll = 0
	}
}

func (t *Tab) scrollBy(delta, visible int) {
	t.scroll += delta
	t.clampScroll(visible)
}

func (t *Tab) scrollTo(line, visible int) {
	t.scroll = line
	t.clampScroll(visible)
}
