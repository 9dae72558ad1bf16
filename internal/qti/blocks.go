package qti

import (
	"strings"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
)

// Default media attributes used when the block carries none.
const (
	defaultImageAlt    = "Image"
	defaultImageWidth  = "400"
	defaultImageHeight = "300"
)

// RenderBlocks converts a sequence of content blocks into XML fragments,
// one per block, newline-joined in sequence order. Pure function; missing
// optional attributes fall back to the documented defaults.
func RenderBlocks(blocks []models.ContentBlock) string {
	fragments := make([]string, 0, len(blocks))
	for _, b := range blocks {
		fragments = append(fragments, renderBlock(b))
	}
	return strings.Join(fragments, "\n")
}

func renderBlock(b models.ContentBlock) string {
	switch b.Type {
	case models.BlockImage:
		return renderImage(b)
	case models.BlockVideo:
		return renderMedia("video", b)
	case models.BlockAudio:
		return renderMedia("audio", b)
	default:
		// text and html blocks both wrap their content verbatim; the
		// content is markup by contract and is not escaped here.
		return "<div" + styleAttr(b.Styles) + ">" + b.Content + "</div>"
	}
}

func renderImage(b models.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString(`<img src="` + escapeAttr(b.Content) + `"`)
	sb.WriteString(` alt="` + escapeAttr(attrOr(b.Attributes, "alt", defaultImageAlt)) + `"`)
	sb.WriteString(` width="` + escapeAttr(attrOr(b.Attributes, "width", defaultImageWidth)) + `"`)
	sb.WriteString(` height="` + escapeAttr(attrOr(b.Attributes, "height", defaultImageHeight)) + `"`)
	sb.WriteString(styleAttr(b.Styles))
	sb.WriteString("/>")
	return sb.String()
}

func renderMedia(tag string, b models.ContentBlock) string {
	var sb strings.Builder
	sb.WriteString("<" + tag + ` src="` + escapeAttr(b.Content) + `"`)
	// Boolean attributes are emitted bare and only when truthy; an absent
	// or false attribute is never written out as attr="false".
	for _, name := range []string{"controls", "autoplay", "loop"} {
		if boolAttr(b.Attributes, name) {
			sb.WriteString(" " + name)
		}
	}
	sb.WriteString(styleAttr(b.Styles))
	sb.WriteString("></" + tag + ">")
	return sb.String()
}

func attrOr(attrs map[string]string, key, fallback string) string {
	if v, ok := attrs[key]; ok && v != "" {
		return v
	}
	return fallback
}

func boolAttr(attrs map[string]string, key string) bool {
	return attrs[key] == "true"
}
