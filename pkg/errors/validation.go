package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// equipmentIDRegex matches catalog equipment identifiers: lowercase
// snake_case, optionally followed by a numeric placement suffix.
var equipmentIDRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// ValidateEquipmentID validates an equipment identifier for safety and
// correctness before it is used in catalog lookups or cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - Lowercase snake_case only
//   - Maximum length of 64 characters
func ValidateEquipmentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "equipment id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "equipment id too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "equipment id contains invalid control characters")
		}
	}

	if !equipmentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid equipment id: %q", id)
	}

	return nil
}

// ValidatePath validates an output file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
