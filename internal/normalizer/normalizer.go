// Package normalizer cleans raw location strings so the gazetteer matching
// stages see predictable, comma-separated input.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// Runs of 3-5 uppercase consonants forming a whole word (store and
	// region codes such as DCCL), or dot-separated initialisms.
	reNoiseAbbrev = regexp.MustCompile(`\b[BCDFGHJKLMNPQRSTVWXZ]{3,5}\b\s*|(?:[A-Za-z]\.){3,}\s*`)
	reBracketed   = regexp.MustCompile(`\(.*?\)`)
	reLeading     = regexp.MustCompile(`^[\s\-,;:_\.\?!/]*`)
	reTrailing    = regexp.MustCompile(`[\s\-,;:_\.\?!/]*$`)
	// Everything that is not a letter, digit, whitespace or hyphen becomes
	// a segment separator.
	reSeparators = regexp.MustCompile(`[^\p{L}\p{N}\s-]+`)
	reTokens     = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces     = regexp.MustCompile(`\s+`)

	substitutions = strings.NewReplacer(
		"'s", "s",
		"St. ", "Saint ",
		"Ft. ", "Fort ",
		"FT. ", "FORT ",
	)
	refolds = strings.NewReplacer(
		"St,", "St.",
		"Ft,", "Ft.",
	)
)

// Clean strips junk from a raw location string: bracketed store numbers,
// noise abbreviations, leading and trailing punctuation, and repeated
// segments. The result is idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	// Accents fold to ASCII so "Montréal" matches the gazetteer spelling.
	s = unidecode.Unidecode(s)
	s = substitutions.Replace(s)
	s = reNoiseAbbrev.ReplaceAllString(s, "")
	// Bracketed spans are dropped only when they carry a digit (store
	// numbers, zip fragments); a plain "(ON)" hint survives.
	s = reBracketed.ReplaceAllStringFunc(s, func(m string) string {
		if strings.ContainsAny(m, "0123456789") {
			return ""
		}
		return m
	})
	s = reLeading.ReplaceAllString(s, "")
	s = reTrailing.ReplaceAllString(s, "")
	parts := reSeparators.Split(s, -1)
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	s = strings.Join(kept, ", ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = refolds.Replace(s)
	s = strings.ReplaceAll(s, "- ", "-")
	for strings.Contains(s, ", , ") {
		s = strings.ReplaceAll(s, ", , ", ", ")
	}
	s = strings.ReplaceAll(s, "--", "-")
	s = dedupeSegments(s)
	return strings.TrimSpace(s)
}

// Split tokenizes on non-alphanumeric boundaries, dropping empty tokens.
func Split(s string) []string {
	var out []string
	for _, tok := range reTokens.Split(s, -1) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// DedupedSplit is Split with consecutive duplicate tokens collapsed.
func DedupedSplit(s string) []string {
	var out []string
	for i, tok := range Split(s) {
		if i == 0 || out[len(out)-1] != tok {
			out = append(out, tok)
		}
	}
	return out
}

// dedupeSegments removes comma-separated segments that repeat the previous
// one verbatim, preserving first-occurrence order.
func dedupeSegments(s string) string {
	segments := strings.Split(s, ", ")
	if len(segments) < 2 {
		return s
	}
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		if i == 0 || out[len(out)-1] != seg {
			out = append(out, seg)
		}
	}
	return strings.Join(out, ", ")
}
