package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 64KB, enough for a line filling several
	// maximum-length string fields.
	DefaultMaxInputSize = 64 * 1024
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "SCHEMAREPL_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
	ErrControlChars  = errors.New("input contains control characters")
)

// SanitizeInput enforces the line size limit, validates UTF-8 and rejects
// control characters other than tab. Input is never rewritten: a line is
// either returned unchanged or refused, so stored records always equal what
// was typed.
func SanitizeInput(input string) (string, error) {
	limit := MaxInputSize()
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d (set %s to raise it)", ErrInputTooLarge, len(input), limit, EnvMaxInputSize)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	if i := strings.IndexFunc(input, isUnsafeControl); i >= 0 {
		r, _ := utf8.DecodeRuneInString(input[i:])
		return "", fmt.Errorf("%w: %U at byte %d", ErrControlChars, r, i)
	}
	return input, nil
}

func isUnsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\t'
}

// MaxInputSize returns the line size limit in bytes, honoring EnvMaxInputSize.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
