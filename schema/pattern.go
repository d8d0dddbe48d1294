package schema

import (
	"regexp"
	"strings"

	"itemadapter/internal/diagnostic"
)

// Regex features with no ECMA-262 equivalent.
var invalidPatternSubstrings = []string{
	"(?P<", // named groups
	"(?<=", // lookbehind
	"(?<!", // negative lookbehind
	"(?>",  // atomic group
	`\A`,   // start of text
	`\Z`,   // end of text
	`\z`,   // end of text
	"(?#",  // comments
}

// inline flag groups such as (?i), (?ms) or (?i:...)
var inlineFlags = regexp.MustCompile(`\(\?[aiLmsuxU-]+[:)]`)

// IsValidPattern reports whether pattern can be emitted as a JSON-Schema
// pattern. Word boundaries are allowed even though they are ASCII-only there.
func IsValidPattern(pattern string) bool {
	for _, sub := range invalidPatternSubstrings {
		if strings.Contains(pattern, sub) {
			return false
		}
	}

	return !inlineFlags.MatchString(pattern)
}

// UpdateFromPattern set-defaults pattern on prop, dropping patterns that use
// unsupported features.
func UpdateFromPattern(prop *Schema, pattern string, st *State, typeName, field string) {
	if !IsValidPattern(pattern) {
		st.Note(diagnostic.CodePatternUnsupported, "pattern "+pattern+" dropped", typeName, field)
		return
	}

	prop.SetDefault("pattern", pattern)
}
