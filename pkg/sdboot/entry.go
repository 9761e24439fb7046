package sdboot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Recognized entry directive keys. Anything else lands in Entry.Extra.
const (
	keyTitle        = "title"
	keyVersion      = "version"
	keyMachineID    = "machine-id"
	keyArchitecture = "architecture"
	keyLinux        = "linux"
	keyInitrd       = "initrd"
	keyOptions      = "options"
)

// Entry is one bootable configuration: a kernel image, optional initrds and the
// kernel command line, backed by `<id>.conf` in the loader entries directory.
// The zero value plus an ID is a valid starting point for building a new entry.
type Entry struct {
	// ID is the stable identifier derived from the entry filename without its
	// .conf suffix. It joins against LoaderConfig.Default and never changes
	// once an entry has been loaded.
	ID string

	Title        string
	Version      string
	MachineID    string
	Architecture string

	// Linux is the loader-root-relative path to the kernel image.
	Linux string
	// Initrd lists initrd images in the order they are handed to the loader.
	Initrd []string
	// Options holds the kernel command-line tokens. Order and duplicates are
	// preserved because both are meaningful (e.g. repeated console= arguments).
	Options []string

	// Extra preserves unrecognized directives verbatim for round-trip fidelity.
	Extra []Directive
}

// NewEntry returns an empty entry with the given identifier.
func NewEntry(id string) *Entry {
	return &Entry{ID: id}
}

// ParseEntry reads an entry file. Unknown directives are not an error: they are
// collected into Extra so newer systemd-boot directives survive a rewrite.
// Repeated initrd directives accumulate and repeated options directives
// concatenate their tokens in appearance order. A file without a single
// directive fails with ErrEmptyEntry.
func ParseEntry(id string, r io.Reader) (*Entry, error) {
	entry := NewEntry(id)
	directives := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := ParseDirective(scanner.Text())
		if !ok {
			continue
		}
		directives++

		switch key {
		case keyTitle:
			entry.Title = value
		case keyVersion:
			entry.Version = value
		case keyMachineID:
			entry.MachineID = value
		case keyArchitecture:
			entry.Architecture = value
		case keyLinux:
			entry.Linux = value
		case keyInitrd:
			// A bare initrd directive with no value carries no image; skip it
			// rather than record an empty path the serializer cannot emit.
			if value != "" {
				entry.Initrd = append(entry.Initrd, value)
			}
		case keyOptions:
			entry.Options = append(entry.Options, strings.Fields(value)...)
		default:
			entry.Extra = append(entry.Extra, Directive{Key: key, Value: value})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entry %q: %w", id, err)
	}

	if directives == 0 {
		return nil, ErrEmptyEntry
	}
	return entry, nil
}

// Validate reports whether the entry is complete enough to boot. systemd-boot
// itself ignores entries without a linux image and renders entries without a
// title by their id, so both are surfaced here instead of failing the parse.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Linux == "" {
		return fmt.Errorf("entry %q: linux field is missing", e.ID)
	}
	if e.Title == "" {
		return fmt.Errorf("entry %q: title field is missing", e.ID)
	}
	return nil
}

// Filename returns the entry's on-disk file name within the entries directory.
func (e *Entry) Filename() string {
	return e.ID + entryExt
}

// IsCurrent reports whether this entry describes the currently booted kernel by
// matching its expected command line against cmdline, typically the token slice
// returned by KernelCmdline. The expected command line is the initrd= token
// (with slashes flipped to backslashes, as the EFI stub reports it) followed by
// the entry's options.
func (e *Entry) IsCurrent(cmdline []string) bool {
	expected := make([]string, 0, len(e.Initrd)+len(e.Options))
	for _, initrd := range e.Initrd {
		expected = append(expected, "initrd="+strings.ReplaceAll(initrd, "/", `\`))
	}
	expected = append(expected, e.Options...)

	if len(expected) == 0 || len(cmdline) < len(expected) {
		return false
	}
	for i, token := range expected {
		if cmdline[i] != token {
			return false
		}
	}
	return true
}
