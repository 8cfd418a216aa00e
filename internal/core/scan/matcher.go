// Package scan contains the pure business logic for free-text parts
// recognition. This is not real OCR: recognition is literal case-insensitive
// substring matching against known part SKUs and names, which keeps the
// resolver pluggable for a real recognition engine later.
package scan

import "strings"

// PartRef identifies a known part the matcher can recognize.
type PartRef struct {
	ID   string // SKU
	Name string
}

// MatchParts scans text line by line for mentions of known parts and returns
// the distinct part IDs matched, in first-match order. A SKU mentioned on
// three lines yields one entry, not three. Blank input yields no matches.
func MatchParts(text string, known []PartRef) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var matched []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, part := range known {
			if seen[part.ID] {
				continue
			}
			if matchesLine(lower, part) {
				seen[part.ID] = true
				matched = append(matched, part.ID)
			}
		}
	}

	return matched
}

func matchesLine(lowerLine string, part PartRef) bool {
	if part.ID != "" && strings.Contains(lowerLine, strings.ToLower(part.ID)) {
		return true
	}
	if part.Name != "" && strings.Contains(lowerLine, strings.ToLower(part.Name)) {
		return true
	}
	return false
}
