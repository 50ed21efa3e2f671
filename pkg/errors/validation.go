package errors

import (
	"strings"
	"unicode"
)

// ValidateSceneName validates a scene name for safety and correctness.
// It rejects names that could be used for path traversal or injection when
// the name ends up in cache keys or store IDs.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "scene name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "scene name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "scene name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "scene name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateDimensions validates canvas dimensions. Both must be strictly
// positive; the upper bound guards conversion tools against absurd raster
// sizes.
func ValidateDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %vx%v", width, height)
	}

	const maxDimension = 1 << 20
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %d), got %vx%v", maxDimension, width, height)
	}

	return nil
}

// ValidateScale validates a raster scale factor.
func ValidateScale(scale float64) error {
	if scale <= 0 {
		return New(ErrCodeInvalidScale, "scale must be positive, got %v", scale)
	}
	if scale > 100 {
		return New(ErrCodeInvalidScale, "scale too large (max 100), got %v", scale)
	}
	return nil
}

// ValidateLengthAdjust validates the lengthAdjust mode of a text shape.
func ValidateLengthAdjust(mode string) error {
	switch mode {
	case "spacing", "spacingAndGlyphs":
		return nil
	default:
		return New(ErrCodeInvalidShape, "invalid lengthAdjust mode: %q", mode)
	}
}
