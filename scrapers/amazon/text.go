package amazon

import (
	"regexp"
	"strings"
)

var (
	reVisitThe    = regexp.MustCompile(`(?i)^Visit the\s+`)
	reStoreSuffix = regexp.MustCompile(`(?i)\s+Store\s*$`)
	reByPrefix    = regexp.MustCompile(`(?i)^by\s+`)
	bidiMarks     = strings.NewReplacer("\u200e", "", "\u200f", "")
	bulletMarkers = "\n•*·"
)

// CleanSeller strips the byline boilerplate around a seller or brand name:
// "Visit the Acme Store" -> "Acme", "by Jane Doe" -> "Jane Doe".
// Returns "" when nothing is left.
func CleanSeller(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = reVisitThe.ReplaceAllString(cleaned, "")
	cleaned = reStoreSuffix.ReplaceAllString(cleaned, "")
	cleaned = reByPrefix.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// normalizeSpace collapses whitespace runs to a single space and trims
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitBullets cuts the text right before every bullet marker, so each marker
// stays at the head of the segment that follows it. Segments are trimmed and
// empty ones dropped.
func splitBullets(s string) []string {
	segments := []string{}
	start := 0
	flush := func(end int) {
		if seg := strings.TrimSpace(s[start:end]); seg != "" {
			segments = append(segments, seg)
		}
		start = end
	}

	for i, r := range s {
		if i > 0 && strings.ContainsRune(bulletMarkers, r) {
			flush(i)
		}
	}
	flush(len(s))

	return segments
}

// cleanLabel strips bidi marks and the trailing colon from a detail label
func cleanLabel(s string) string {
	s = bidiMarks.Replace(s)
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":")
	return strings.TrimSpace(s)
}
