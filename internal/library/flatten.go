package library

import (
	"fmt"
	"regexp"
	"strings"
)

var windowsDrivePattern = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// FlattenPath converts an absolute path into a safe single-token file
// stem used to name archives:
//
//	C:\Users\me\Docs -> C_Users_me_Docs
//	/mnt/hdd1/docs   -> mnt_hdd1_docs
//
// Both Unix roots and Windows drive prefixes are accepted on every
// platform so archives built on one OS keep their names on another.
func FlattenPath(path string) (string, error) {
	if !isAbsolutePath(path) {
		return "", fmt.Errorf("path must be absolute: %s", path)
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	if windowsDrivePattern.MatchString(path) {
		// Keep the drive letter, drop the colon.
		normalized = normalized[:1] + normalized[2:]
	}

	parts := strings.Split(normalized, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "_"), nil
}

func isAbsolutePath(path string) bool {
	if strings.HasPrefix(path, "/") {
		return true
	}
	return windowsDrivePattern.MatchString(path)
}
