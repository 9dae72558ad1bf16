package qti

import "strings"

// All strings placed into attribute values or plain text nodes go through
// these two replacers at the single point where output is written. Block
// content (text/html blocks, option markup) is trusted markup and is
// deliberately not escaped.

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
