package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// openBrowser hands url to the platform's URL opener without waiting
// for it to exit.
func openBrowser(url string) error {
	args, ok := detectBrowserCommand(runtime.GOOS, os.Getenv, exec.LookPath)
	if !ok {
		return fmt.Errorf("no browser opener found")
	}
	cmd := exec.Command(args[0], append(args[1:], url)...)
	return cmd.Start()
}

func detectBrowserCommand(goos string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	if browser := strings.TrimSpace(getenv("BROWSER")); browser != "" {
		if path, err := lookPath(browser); err == nil && path != "" {
			return []string{path}, true
		}
	}

	if strings.EqualFold(goos, "windows") {
		if path, err := lookPath("rundll32"); err == nil && path != "" {
			return []string{path, "url.dll,FileProtocolHandler"}, true
		}
		return nil, false
	}
	if strings.EqualFold(goos, "darwin") {
		if path, err := lookPath("open"); err == nil && path != "" {
			return []string{path}, true
		}
		return nil, false
	}

	for _, candidate := range []string{"xdg-open", "sensible-browser"} {
		if path, err := lookPath(candidate); err == nil && path != "" {
			return []string{path}, true
		}
	}
	return nil, false
}
