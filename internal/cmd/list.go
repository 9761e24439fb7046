package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/efikit/bootconf/internal/cmdfmt"
	"github.com/efikit/bootconf/pkg/sdboot"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all boot entries",
		Long: `List all boot entries in the loader entries directory.
Entries that cannot be parsed are reported but do not prevent listing the rest.
The entry selected as default and the currently booted entry are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.close()
			return runList(b)
		},
	}
}

func runList(b *backend) error {
	cfg, err := b.collection.LoaderConfig()
	if err != nil {
		return err
	}
	entries, failed, err := b.collection.Entries()
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	// Marking the booted entry is best effort; /proc/cmdline is not available
	// when inspecting an image from another system.
	cmdline, err := sdboot.KernelCmdline(afero.NewOsFs())
	if err != nil {
		b.log.Debug("unable to read kernel command line", zap.Error(err))
		cmdline = nil
	}

	printer := cmdfmt.NewPrinter([]string{"id", "title", "version", "linux", "default", "current"}, b.cfg.JSON)
	for _, entry := range entries {
		printer.Row(
			entry.ID,
			entry.Title,
			entry.Version,
			entry.Linux,
			entry.ID == cfg.Default,
			entry.IsCurrent(cmdline),
		)
	}
	printer.Flush()

	if len(failed) > 0 {
		msgs := make([]string, 0, len(failed))
		for _, f := range failed {
			msgs = append(msgs, f.Error())
		}
		return fmt.Errorf("unable to parse %d entr%s: %s",
			len(failed), pluralY(len(failed)), strings.Join(msgs, "; "))
	}
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
