package sdboot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryMarshalText(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name: "canonical field order regardless of construction order",
			entry: Entry{
				ID:           "Pop_OS-current",
				Options:      []string{"ro", "quiet", "splash"},
				Linux:        "/vmlinuz.efi",
				Title:        "Pop!_OS",
				Initrd:       []string{"/initrd.img"},
				Architecture: "x64",
				MachineID:    "140f9e4d",
				Version:      "6.8.0",
			},
			expected: `title Pop!_OS
version 6.8.0
machine-id 140f9e4d
architecture x64
linux /vmlinuz.efi
initrd /initrd.img
options ro quiet splash
`,
		},
		{
			name: "unset fields omitted",
			entry: Entry{
				ID:    "minimal",
				Linux: "/vmlinuz",
			},
			expected: "linux /vmlinuz\n",
		},
		{
			name: "one initrd line per image",
			entry: Entry{
				ID:     "multi",
				Linux:  "/vmlinuz",
				Initrd: []string{"/intel-ucode.img", "/initrd.img"},
			},
			expected: `linux /vmlinuz
initrd /intel-ucode.img
initrd /initrd.img
`,
		},
		{
			name: "extra directives after recognized fields",
			entry: Entry{
				ID:    "extra",
				Title: "Recovery",
				Extra: []Directive{
					{Key: "efi", Value: "/EFI/recovery/boot.efi"},
					{Key: "devicetree", Value: "/dtbs/board.dtb"},
				},
			},
			expected: `title Recovery
efi /EFI/recovery/boot.efi
devicetree /dtbs/board.dtb
`,
		},
		{
			name: "bare key extra survives",
			entry: Entry{
				ID:    "bare",
				Linux: "/vmlinuz",
				Extra: []Directive{{Key: "flagonly"}},
			},
			expected: "linux /vmlinuz\nflagonly\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.entry.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestLoaderConfigMarshalText(t *testing.T) {
	tests := []struct {
		name     string
		cfg      LoaderConfig
		expected string
	}{
		{
			name: "default and timeout",
			cfg: LoaderConfig{
				Default: "Pop_OS-current",
				Timeout: uintPtr(10),
			},
			expected: "default Pop_OS-current\ntimeout 10\n",
		},
		{
			name:     "timeout zero emitted",
			cfg:      LoaderConfig{Timeout: uintPtr(0)},
			expected: "timeout 0\n",
		},
		{
			name:     "zero config serializes to nothing",
			cfg:      LoaderConfig{},
			expected: "",
		},
		{
			name: "extras after recognized fields",
			cfg: LoaderConfig{
				Default: "a",
				Extra:   []Directive{{Key: "console-mode", Value: "max"}},
			},
			expected: "default a\nconsole-mode max\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.cfg.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestEntryRoundTrip(t *testing.T) {
	original := &Entry{
		ID:           "Pop_OS-current",
		Title:        "Pop!_OS 22.04",
		Version:      "6.8.0-76060800",
		MachineID:    "140f9e4d95e64a3cb876e25eb6e6f505",
		Architecture: "x64",
		Linux:        "/EFI/Pop_OS-140f9e4d/vmlinuz.efi",
		Initrd:       []string{"/EFI/Pop_OS-140f9e4d/initrd.img", "/EFI/Pop_OS-140f9e4d/initrd-prev.img"},
		Options:      []string{"root=UUID=2282ec85", "ro", "quiet", "console=ttyS0", "console=tty0"},
		Extra:        []Directive{{Key: "devicetree", Value: "/dtbs/board.dtb"}},
	}

	first, err := original.MarshalText()
	require.NoError(t, err)

	reparsed, err := ParseEntry(original.ID, strings.NewReader(string(first)))
	require.NoError(t, err)
	assert.Equal(t, original, reparsed, "parse of serialized entry must equal the original")

	second, err := reparsed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-serialization must be byte-identical")
}

func TestLoaderConfigRoundTrip(t *testing.T) {
	original := &LoaderConfig{
		Default: "Pop_OS-current",
		Timeout: uintPtr(5),
		Extra: []Directive{
			{Key: "console-mode", Value: "max"},
			{Key: "editor", Value: "no"},
		},
	}

	first, err := original.MarshalText()
	require.NoError(t, err)

	reparsed, err := ParseLoaderConfig(strings.NewReader(string(first)))
	require.NoError(t, err)
	assert.Equal(t, original, reparsed)

	second, err := reparsed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
