package textfilter

import (
	"strings"

	"golang.org/x/text/transform"
)

// FilterLine drops every rune outside the whitelist, trims leading and
// trailing whitespace and reports whether anything is left. Lines that filter
// down to nothing are suppressed by returning ok == false.
func FilterLine(raw string) (cleaned string, ok bool) {
	// Remove never fails on complete input; transform.String grows its own
	// buffers.
	kept, _, _ := transform.String(remover, raw)
	cleaned = strings.TrimSpace(kept)
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}
