package chart

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by [Save] for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// CheckFormat reports whether path has an extension that [Save] can write.
func CheckFormat(path string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return nil
}
