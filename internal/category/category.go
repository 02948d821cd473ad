// Package category detects a package's goods category from its free-text
// description using keyword matching.
package category

import "strings"

const (
	Medicine = "medicine"
	Clothes  = "clothes"
	Fancy    = "fancy"
)

// Keyword sets checked in priority order: medicine beats clothes beats fancy.
var (
	medicineKeywords = []string{"medicine", "tablet", "drug", "medical", "first aid", "antibiotic"}
	clothesKeywords  = []string{"shirt", "jeans", "clothes", "fabric", "t-shirt", "dress"}
	fancyKeywords    = []string{"jewelry", "watch", "luxury", "perfume", "cosmetic"}
)

// Detect returns the category matching the description, or "" when no
// keyword matches. Matching is case-insensitive substring containment.
func Detect(description string) string {
	lower := strings.ToLower(description)
	if lower == "" {
		return ""
	}

	for _, kw := range medicineKeywords {
		if strings.Contains(lower, kw) {
			return Medicine
		}
	}
	for _, kw := range clothesKeywords {
		if strings.Contains(lower, kw) {
			return Clothes
		}
	}
	for _, kw := range fancyKeywords {
		if strings.Contains(lower, kw) {
			return Fancy
		}
	}
	return ""
}

// Valid reports whether s is one of the known categories.
func Valid(s string) bool {
	switch s {
	case Medicine, Clothes, Fancy:
		return true
	}
	return false
}
