package embed

import (
	"path/filepath"
	"strings"
)

const defaultMime = "application/octet-stream"

var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// MimeType maps the lower-cased extension of path to a media type.
func MimeType(path string) string {
	if m, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return defaultMime
}
