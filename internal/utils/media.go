// internal/utils/media.go
package utils

import "strings"

// AbsoluteMediaURL joins a stored relative media path with the configured
// public base. The base is always passed explicitly by the caller; nothing
// here reads request state. An empty base returns the relative path as-is.
func AbsoluteMediaURL(base, path string) string {
	if path == "" {
		return ""
	}
	if base == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
