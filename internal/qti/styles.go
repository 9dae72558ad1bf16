package qti

import (
	"sort"
	"strings"
	"unicode"
)

// Values treated as "no explicit style set" rather than real CSS values.
func isStyleSentinel(v string) bool {
	return v == "" || v == "auto" || v == "transparent"
}

// SerializeStyles converts a sparse style mapping into a single inline style
// string: sentinel values are dropped, camelCase keys become kebab-case and
// entries are joined as "key: value" with "; ". Keys are emitted in sorted
// order so output is deterministic for the same mapping.
func SerializeStyles(styles map[string]string) string {
	if len(styles) == 0 {
		return ""
	}

	keys := make([]string, 0, len(styles))
	for k := range styles {
		if isStyleSentinel(styles[k]) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, camelToKebab(k)+": "+styles[k])
	}
	return strings.Join(parts, "; ")
}

// ParseStyles is the inverse used by the parsers: an inline style attribute
// split on ";" then the first ":" into a mapping. Keys keep their kebab-case
// spelling as found in the document.
func ParseStyles(attr string) map[string]string {
	styles := make(map[string]string)
	for _, decl := range strings.Split(attr, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		styles[key] = value
	}
	return styles
}

func camelToKebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// styleAttr renders a ready-to-embed ` style="..."` attribute, or the empty
// string when nothing survives filtering.
func styleAttr(styles map[string]string) string {
	s := SerializeStyles(styles)
	if s == "" {
		return ""
	}
	return ` style="` + escapeAttr(s) + `"`
}
