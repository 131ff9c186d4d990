// Package normalize holds the pure text and quantity transforms applied to
// every spreadsheet value before it reaches the database. All functions treat
// blank, whitespace-only and "nan" cell text as absent.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	nonAlphaNum = regexp.MustCompile(`[^a-zA-Z0-9]`)
	underscores = regexp.MustCompile(`_+`)
)

// Text trims surrounding whitespace and collapses interior whitespace runs to
// a single space. The second return is false when the input is absent.
func Text(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	return spaceRun.ReplaceAllString(s, " "), true
}

// TextPtr is Text for nullable database columns.
func TextPtr(raw string) *string {
	s, ok := Text(raw)
	if !ok {
		return nil
	}
	return &s
}

// Code strips every character that is not an ASCII letter or digit. Used for
// material, product and SKU keys so formatting noise never produces spurious
// duplicate or missing-key rows.
func Code(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	cleaned := nonAlphaNum.ReplaceAllString(s, "")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// Model splits a free-text model string on runs of underscores, trims each
// component, drops empties and rejoins with single underscores.
func Model(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	parts := underscores.Split(s, -1)
	components := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			components = append(components, p)
		}
	}
	if len(components) == 0 {
		return "", false
	}
	return strings.Join(components, "_"), true
}

// ModelPtr is Model for nullable database columns.
func ModelPtr(raw string) *string {
	s, ok := Model(raw)
	if !ok {
		return nil
	}
	return &s
}

// IsValidQty reports whether a cell holds a usable consumption quantity:
// non-blank, not the literal "0" or "nan", and parsing as a float strictly
// greater than zero.
func IsValidQty(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" || s == "0" || strings.EqualFold(s, "nan") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return f > 0
}

// Float parses a cell as float64, returning nil for absent or unparseable
// values.
func Float(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Qty returns the quantity to persist on a BOM edge: the parsed value when
// valid, 0 otherwise.
func Qty(raw string) float64 {
	if !IsValidQty(raw) {
		return 0
	}
	f, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return f
}
