// Package sdboot reads and rewrites the on-disk configuration of the systemd-boot
// EFI boot loader: the single loader.conf and the directory of per-entry .conf
// files describing bootable kernels. Parsing is deliberately permissive (unknown
// directives are preserved, never rejected) while writing is strict about
// atomicity, since a half-written file here can leave a machine unbootable.
package sdboot

import "strings"

// Directive is one raw `key value` line that is not modeled as a typed field.
// Directives are kept in their original relative order so rewriting a file does
// not lose or reorder configuration this package does not understand.
type Directive struct {
	Key   string
	Value string
}

// ParseDirective splits a single configuration line into its key and value.
// The format is one directive per line: the key runs up to the first run of
// whitespace and the remainder is the value, trimmed only at its ends.
// Whitespace inside a value stays significant (multi-token options lines).
// Returns ok=false for blank lines and `#` comments.
func ParseDirective(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	if i := strings.IndexFunc(line, isSpace); i >= 0 {
		return line[:i], strings.TrimLeftFunc(line[i:], isSpace), true
	}

	// A key with no value is still a directive.
	return line, "", true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
