// Package verify checks medical product claims against the registry of
// WHO-approved product types. The claim itself is never stored or logged;
// callers only learn whether the claim is in the registry.
package verify

import "strings"

var whoApprovedProducts = map[string]struct{}{
	"antibiotics":       {},
	"vaccines":          {},
	"first_aid":         {},
	"medical_kit":       {},
	"surgical_supplies": {},
}

// ProductClaim reports whether the claimed product type is WHO-approved.
// Matching is case-insensitive and ignores surrounding whitespace.
func ProductClaim(claim string) bool {
	normalized := strings.ToLower(strings.TrimSpace(claim))
	if normalized == "" {
		return false
	}
	_, ok := whoApprovedProducts[normalized]
	return ok
}
