package cmd

import (
	"github.com/spf13/cobra"

	"github.com/efikit/bootconf/internal/cmdfmt"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the loader configuration and whether the default entry exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.close()

			cfg, err := b.collection.LoaderConfig()
			if err != nil {
				return err
			}
			state, err := b.collection.DefaultState()
			if err != nil {
				return err
			}

			timeout := "unset"
			if d, ok := cfg.TimeoutDuration(); ok {
				timeout = d.String()
			}
			defaultEntry := cfg.Default
			if defaultEntry == "" {
				defaultEntry = "unset"
			}

			printer := cmdfmt.NewPrinter([]string{"loader root", "default", "default entry", "timeout"}, b.cfg.JSON)
			printer.Row(b.collection.Root(), defaultEntry, state.String(), timeout)
			printer.Flush()
			return nil
		},
	}
}
