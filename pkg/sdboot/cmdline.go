package sdboot

import (
	"strings"

	"github.com/spf13/afero"
)

const procCmdline = "/proc/cmdline"

// KernelCmdline returns the running kernel's command line as a token slice,
// suitable for Entry.IsCurrent. Tokens follow the same whitespace splitting as
// options directives.
func KernelCmdline(fsys afero.Fs) ([]string, error) {
	data, err := afero.ReadFile(fsys, procCmdline)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}
