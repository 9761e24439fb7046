package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSetDefaultCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "set-default [<id>]",
		Short: "Select the entry the loader boots by default",
		Long: `Point loader.conf's default at the given entry id. The entry is not required
to exist yet; provisioning flows may set the default before writing the entry.
A warning is printed when the referenced entry is missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clear && len(args) == 0 {
				return fmt.Errorf("missing <id> argument (or pass --clear)")
			}

			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.close()

			cfg, err := b.collection.LoaderConfig()
			if err != nil {
				return err
			}
			if clear {
				cfg.Default = ""
			} else {
				cfg.Default = args[0]
				if !b.collection.EntryExists(args[0]) {
					fmt.Printf("warning: no entry file exists for %q yet\n", args[0])
				}
			}
			if err := b.collection.SaveLoaderConfig(cfg); err != nil {
				return err
			}
			b.log.Info("updated loader.conf", zap.String("default", cfg.Default))
			return nil
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "Unset the default so the loader picks an entry on its own.")
	return cmd
}

func newSetTimeoutCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "set-timeout [<seconds>]",
		Short: "Set the boot menu timeout",
		Long: `Set the boot menu timeout in whole seconds. A timeout of 0 boots the default
entry immediately without showing the menu.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clear && len(args) == 0 {
				return fmt.Errorf("missing <seconds> argument (or pass --clear)")
			}

			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.close()

			cfg, err := b.collection.LoaderConfig()
			if err != nil {
				return err
			}
			if clear {
				cfg.ClearTimeout()
			} else {
				seconds, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid timeout %q: %w", args[0], err)
				}
				cfg.SetTimeout(uint(seconds))
			}
			return b.collection.SaveLoaderConfig(cfg)
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "Unset the timeout so the loader uses its own default.")
	return cmd
}
