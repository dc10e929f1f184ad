package ui

import (
	"errors"
	"reflect"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, candidate := range available {
			if candidate == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func noEnv(string) string { return "" }

func TestDetectBrowserCommandLinux(t *testing.T) {
	args, ok := detectBrowserCommand("linux", noEnv, fakeLookPath("xdg-open"))
	if !ok || !reflect.DeepEqual(args, []string{"/usr/bin/xdg-open"}) {
		t.Fatalf("got (%v,%v)", args, ok)
	}
}

func TestDetectBrowserCommandDarwin(t *testing.T) {
	args, ok := detectBrowserCommand("darwin", noEnv, fakeLookPath("open"))
	if !ok || !reflect.DeepEqual(args, []string{"/usr/bin/open"}) {
		t.Fatalf("got (%v,%v)", args, ok)
	}
}

func TestDetectBrowserCommandWindows(t *testing.T) {
	args, ok := detectBrowserCommand("windows", noEnv, fakeLookPath("rundll32"))
	if !ok || !reflect.DeepEqual(args, []string{"/usr/bin/rundll32", "url.dll,FileProtocolHandler"}) {
		t.Fatalf("got (%v,%v)", args, ok)
	}
}

func TestDetectBrowserCommandPrefersBrowserEnv(t *testing.T) {
	env := func(key string) string {
		if key == "BROWSER" {
			return "firefox"
		}
		return ""
	}
	args, ok := detectBrowserCommand("linux", env, fakeLookPath("firefox", "xdg-open"))
	if !ok || !reflect.DeepEqual(args, []string{"/usr/bin/firefox"}) {
		t.Fatalf("got (%v,%v)", args, ok)
	}
}

func TestDetectBrowserCommandNoneFound(t *testing.T) {
	if _, ok := detectBrowserCommand("linux", noEnv, fakeLookPath()); ok {
		t.Fatalf("expected no command")
	}
}
