package user

import (
	"html"
	"strings"
)

// Output shaping for profile payloads. Free-text fields are entity-encoded
// before they reach the browser; email and avatar values are reduced to
// their legal character sets.

func escapeHTML(s string) string {
	return html.EscapeString(s)
}

const emailChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.!#$%&'*+-/=?^_`{|}~@[]"

func sanitizeEmail(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(emailChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sanitizeURL(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0x20 && r < 0x7f {
			b.WriteRune(r)
		}
	}
	return b.String()
}
