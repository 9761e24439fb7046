package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/efikit/bootconf/pkg/sdboot"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a boot entry",
		Long: `Delete the boot entry <id>. Removing the entry loader.conf points at as the
default is allowed; loader.conf is left untouched and the loader falls back to
its own selection until the default is updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.close()

			if err := b.collection.RemoveEntry(args[0]); err != nil {
				return err
			}
			b.log.Info("removed boot entry", zap.String("id", args[0]))

			if state, err := b.collection.DefaultState(); err == nil && state == sdboot.DefaultMissing {
				fmt.Printf("note: loader.conf still selects %q as default\n", args[0])
			}
			return nil
		},
	}
}
