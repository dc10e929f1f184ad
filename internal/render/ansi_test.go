package render

import (
	"strings"
	"testing"
)

func renderANSI(t *testing.T, doc string, width int, themeName string, opts ...Option) string {
	t.Helper()
	theme, ok := ThemeByName(themeName)
	if !ok {
		t.Fatalf("unknown theme %q", themeName)
	}
	var out strings.Builder
	if err := Write(&out, doc, width, theme, opts...); err != nil {
		t.Fatalf("write: %v", err)
	}
	return out.String()
}

func TestWriteMonoThemeIsPlainText(t *testing.T) {
	got := renderANSI(t, "# Title\n\nbody *em* text", 0, "mono")
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("mono theme must not emit ANSI sequences: %q", got)
	}
	want := "Title\n\nbody em text\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteStylesStrongText(t *testing.T) {
	got := renderANSI(t, "a **b** c", 0, "default")
	if !strings.Contains(got, ansiBold+"b"+ansiReset) {
		t.Fatalf("expected bold span in %q", got)
	}
}

func TestWriteCodeBlockIndentedVerbatim(t *testing.T) {
	got := renderANSI(t, "```\n*not em*\n```", 10, "mono")
	want := "    *not em*\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteCodeBlockNeverWrapped(t *testing.T) {
	long := strings.Repeat("x", 60)
	got := renderANSI(t, "```\n"+long+"\n```", 20, "mono")
	if !strings.Contains(got, long) {
		t.Fatalf("code line was wrapped or altered: %q", got)
	}
}

func TestWriteWrapsParagraphs(t *testing.T) {
	got := renderANSI(t, "alpha beta gamma delta", 11, "mono")
	want := "alpha beta\ngamma delta\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteLinkWithoutOSC8ShowsURL(t *testing.T) {
	got := renderANSI(t, "[docs](https://example.com)", 0, "mono")
	want := "docs (https://example.com)\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteLinkWithOSC8(t *testing.T) {
	got := renderANSI(t, "[docs](https://example.com)", 0, "mono", WithOSC8(true))
	if !strings.Contains(got, osc8Start+"https://example.com") {
		t.Fatalf("expected OSC 8 open sequence in %q", got)
	}
	if !strings.Contains(got, osc8End) {
		t.Fatalf("expected OSC 8 close sequence in %q", got)
	}
	if strings.Contains(got, "(https://example.com)") {
		t.Fatalf("OSC 8 output must not repeat the URL: %q", got)
	}
}

func TestThemeByNameFallsBackToDefault(t *testing.T) {
	theme, ok := ThemeByName("")
	if !ok || theme.Name() != "default" {
		t.Fatalf("empty name should select default, got %v %v", theme, ok)
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unknown theme must not resolve")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if len(names) < 2 {
		t.Fatalf("expected builtin themes, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("themes not sorted: %v", names)
		}
	}
}
