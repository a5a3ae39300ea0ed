package marketplace

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// invalidFilenameChars are the characters disallowed in filenames on common
// filesystems (Windows is the strictest: / \ : * ? " < > |)
const invalidFilenameChars = `/\:*?"<>|`

// SanitizeFilename strips characters that are not allowed in filenames on
// most filesystems, then trims leading/trailing whitespace and dots.
//
// Returns a validation error if the input is empty or becomes empty after
// stripping.
func SanitizeFilename(filename string) (string, error) {
	if filename == "" {
		return "", NewValidationError("filename cannot be empty")
	}

	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return -1
		}
		return r
	}, filename)

	sanitized = strings.Trim(sanitized, ". ")

	if sanitized == "" {
		return "", NewValidationError(
			fmt.Sprintf("filename %q contains only invalid characters", filename))
	}

	return sanitized, nil
}

// ValidateURL reports whether s is a well-formed http or https URL with a
// non-empty host. It never returns an error; any parse failure yields false.
func ValidateURL(s string) bool {
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SafeCreateDirectory creates the directory and all missing parents,
// succeeding silently if it already exists.
//
// Returns a validation error wrapping the underlying filesystem error on
// empty path or creation failure.
func SafeCreateDirectory(path string) error {
	if path == "" {
		return NewValidationError("directory path cannot be empty")
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return NewErrorWithCause(KindValidation,
			fmt.Sprintf("failed to create directory %q", path), err)
	}

	return nil
}

// byteUnits are the binary (1024-based) size units used by FormatBytes
var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes formats a byte count into a human-readable string using
// binary (1024-based) units. Negative input yields "0 B". Byte-scale values
// render with no decimal places; larger units render with exactly two.
func FormatBytes(byteCount int64) string {
	if byteCount < 0 {
		return "0 B"
	}

	size := float64(byteCount)
	unitIndex := 0
	for size >= 1024.0 && unitIndex < len(byteUnits)-1 {
		size /= 1024.0
		unitIndex++
	}

	if unitIndex == 0 {
		return fmt.Sprintf("%d %s", byteCount, byteUnits[unitIndex])
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[unitIndex])
}
