package sdboot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	keyDefault = "default"
	keyTimeout = "timeout"
)

// LoaderConfig models loader.conf: the default entry selection and the boot
// menu timeout. All other directives (console-mode, editor, ...) pass through
// Extra untouched.
type LoaderConfig struct {
	// Default is the id of the entry the loader selects by default. Empty
	// means unset and the loader picks on its own. The referenced entry is
	// not required to exist; provisioning flows routinely set the default
	// before writing the entry itself.
	Default string

	// Timeout is the menu timeout in seconds. nil means unset; zero is
	// meaningful and tells the loader to boot the default immediately.
	Timeout *uint

	Extra []Directive
}

// ParseLoaderConfig reads loader.conf. It never rejects the file over its
// content: a single bad directive must not block inspection of the boot
// configuration, so anything unrecognized or malformed (e.g. a non-numeric
// timeout) is preserved in Extra instead. The returned error only reflects
// read failures.
func ParseLoaderConfig(r io.Reader) (*LoaderConfig, error) {
	cfg := &LoaderConfig{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := ParseDirective(scanner.Text())
		if !ok {
			continue
		}

		switch key {
		case keyDefault:
			cfg.Default = value
		case keyTimeout:
			if seconds, err := strconv.ParseUint(value, 10, 32); err == nil {
				timeout := uint(seconds)
				cfg.Timeout = &timeout
				continue
			}
			// Malformed timeout values (including systemd-boot's own
			// "menu-force" and "menu-hidden" keywords) ride along in Extra.
			cfg.Extra = append(cfg.Extra, Directive{Key: key, Value: value})
		default:
			cfg.Extra = append(cfg.Extra, Directive{Key: key, Value: value})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading loader.conf: %w", err)
	}

	return cfg, nil
}

// SetTimeout sets the menu timeout to the given number of seconds.
func (c *LoaderConfig) SetTimeout(seconds uint) {
	c.Timeout = &seconds
}

// ClearTimeout unsets the menu timeout so the loader falls back to its default.
func (c *LoaderConfig) ClearTimeout() {
	c.Timeout = nil
}

// TimeoutDuration returns the menu timeout as a duration, or ok=false when the
// timeout is unset.
func (c *LoaderConfig) TimeoutDuration() (time.Duration, bool) {
	if c.Timeout == nil {
		return 0, false
	}
	return time.Duration(*c.Timeout) * time.Second, true
}
