// Package support holds the small shared helpers the rest of the library
// leans on: currency-code normalization, calendar-date parsing and decimal
// rounding/formatting.
package support

import (
	"fmt"
	"strings"
)

// NormalizeCode canonicalizes a currency code to three upper-case ASCII
// letters. Anything that does not have that shape after trimming is rejected.
func NormalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	for i := 0; i < 3; i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
	}
	return c, nil
}

// LowerCode is NormalizeCode with a lower-case result, used when callers ask
// for lower-cased map keys.
func LowerCode(code string) (string, error) {
	c, err := NormalizeCode(code)
	if err != nil {
		return "", err
	}
	return strings.ToLower(c), nil
}

// IsCode reports whether code normalizes to a valid three-letter shape.
func IsCode(code string) bool {
	_, err := NormalizeCode(code)
	return err == nil
}
