// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logo

import "strings"

// textEscaper replaces &, <, > in one pass, so the ampersands it introduces
// are never escaped again.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// EscapeText makes s safe as element content: markup characters become
// entities and characters XML cannot carry are dropped.
func EscapeText(s string) string {
	return textEscaper.Replace(stripInvalidXML(s))
}

// escapeAttr makes s safe inside a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(stripInvalidXML(s))
}

func stripInvalidXML(s string) string {
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
