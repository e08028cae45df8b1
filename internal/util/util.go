package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"
)

const bytesPerMB = 1024 * 1024

// WriteFile writes data to a file with 0o644 permissions, creating the parent directory.
func WriteFile(path string, data []byte) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create directory for %s: %w", path, err)
	}
	return nil
}

// FirstRunes returns at most maxRunes runes of text without adding an ellipsis.
func FirstRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes])
}

// Megabytes converts a byte count to MiB.
func Megabytes(size int64) float64 {
	return float64(size) / bytesPerMB
}

// FormatDecimal prints v with the shortest representation that round-trips,
// always keeping one fractional digit for whole numbers (60 -> "60.0").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'N' || s[i] == 'I' {
			return s
		}
	}
	return s + ".0"
}
