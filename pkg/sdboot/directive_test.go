package sdboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
		ok    bool
	}{
		{
			name:  "simple directive",
			line:  "linux /vmlinuz-6.8.0",
			key:   "linux",
			value: "/vmlinuz-6.8.0",
			ok:    true,
		},
		{
			name:  "value keeps internal whitespace",
			line:  "options root=/dev/sda2 ro  quiet",
			key:   "options",
			value: "root=/dev/sda2 ro  quiet",
			ok:    true,
		},
		{
			name:  "leading and trailing whitespace stripped",
			line:  "  title   Pop!_OS  ",
			key:   "title",
			value: "Pop!_OS",
			ok:    true,
		},
		{
			name:  "tab separated",
			line:  "default\tPop_OS-current",
			key:   "default",
			value: "Pop_OS-current",
			ok:    true,
		},
		{
			name: "key without value",
			line: "editor",
			key:  "editor",
			ok:   true,
		},
		{
			name: "key with trailing whitespace only",
			line: "editor   ",
			key:  "editor",
			ok:   true,
		},
		{
			name: "blank line",
			line: "",
		},
		{
			name: "whitespace only line",
			line: "   \t ",
		},
		{
			name: "comment",
			line: "# this line is ignored",
		},
		{
			name: "indented comment",
			line: "   # still a comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := ParseDirective(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}
