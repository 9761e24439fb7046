package sdboot

import (
	"strconv"
	"strings"
)

// MarshalText renders the entry in its canonical on-disk form: recognized
// fields first in a fixed order, then unrecognized directives in their original
// relative order. The original file's field order and comments are not
// reproduced; the guarantee is semantic round-trip (re-parsing the output
// yields an equal entry) and byte-stable re-serialization, not byte-identical
// preservation of the input.
func (e *Entry) MarshalText() ([]byte, error) {
	var b strings.Builder
	writeDirective(&b, keyTitle, e.Title)
	writeDirective(&b, keyVersion, e.Version)
	writeDirective(&b, keyMachineID, e.MachineID)
	writeDirective(&b, keyArchitecture, e.Architecture)
	writeDirective(&b, keyLinux, e.Linux)
	for _, initrd := range e.Initrd {
		writeDirective(&b, keyInitrd, initrd)
	}
	if len(e.Options) > 0 {
		writeDirective(&b, keyOptions, strings.Join(e.Options, " "))
	}
	for _, d := range e.Extra {
		writeExtra(&b, d)
	}
	return []byte(b.String()), nil
}

// MarshalText renders loader.conf in canonical form: default, timeout, then
// passthrough directives. Fields left unset are omitted entirely.
func (c *LoaderConfig) MarshalText() ([]byte, error) {
	var b strings.Builder
	writeDirective(&b, keyDefault, c.Default)
	if c.Timeout != nil {
		writeDirective(&b, keyTimeout, strconv.FormatUint(uint64(*c.Timeout), 10))
	}
	for _, d := range c.Extra {
		writeExtra(&b, d)
	}
	return []byte(b.String()), nil
}

func writeDirective(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

// writeExtra emits an unrecognized directive, keeping bare keys (a directive
// with no value) intact rather than dropping them like unset modeled fields.
func writeExtra(b *strings.Builder, d Directive) {
	b.WriteString(d.Key)
	if d.Value != "" {
		b.WriteByte(' ')
		b.WriteString(d.Value)
	}
	b.WriteByte('\n')
}
