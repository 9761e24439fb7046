package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/efikit/bootconf/pkg/sdboot"
)

func newCreateCmd() *cobra.Command {
	var (
		title     string
		version   string
		machineID string
		arch      string
		linux     string
		initrd    []string
		options   string
		makeDef   bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create or replace a boot entry",
		Long: `Create or replace the boot entry <id>. If an entry with the same id already
exists it is overwritten. The entry file is written atomically, so a crash
mid-write never corrupts an existing entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.close()

			entry := &sdboot.Entry{
				ID:           args[0],
				Title:        title,
				Version:      version,
				MachineID:    machineID,
				Architecture: arch,
				Linux:        linux,
				Initrd:       initrd,
				Options:      strings.Fields(options),
			}
			if err := entry.Validate(); err != nil && !force {
				return err
			}
			if err := b.collection.PutEntry(entry); err != nil {
				return err
			}
			b.log.Info("wrote boot entry", zap.String("id", entry.ID))

			if makeDef {
				cfg, err := b.collection.LoaderConfig()
				if err != nil {
					return err
				}
				cfg.Default = entry.ID
				if err := b.collection.SaveLoaderConfig(cfg); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Human readable title shown in the boot menu.")
	cmd.Flags().StringVar(&version, "version", "", "Version string used to order entries with the same title.")
	cmd.Flags().StringVar(&machineID, "machine-id", "", "Machine id of the installation that owns this entry.")
	cmd.Flags().StringVar(&arch, "architecture", "", "EFI architecture identifier (e.g. x64).")
	cmd.Flags().StringVar(&linux, "linux", "", "Loader-root-relative path to the kernel image.")
	cmd.Flags().StringSliceVar(&initrd, "initrd", nil, "Initrd image path, repeatable; images are passed to the loader in the given order.")
	cmd.Flags().StringVar(&options, "options", "", "Kernel command line, whitespace separated. Tokens containing literal whitespace are not representable in the entry format.")
	cmd.Flags().BoolVar(&makeDef, "set-default", false, "Also point loader.conf's default at the new entry.")
	cmd.Flags().BoolVar(&force, "force", false, "Write the entry even if it is missing a title or linux image.")
	return cmd
}
