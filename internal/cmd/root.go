// Package cmd assembles the sdbootctl command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/efikit/bootconf/internal/config"
	"github.com/efikit/bootconf/internal/logger"
	"github.com/efikit/bootconf/pkg/sdboot"
)

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdbootctl",
		Short: "Inspect and modify the systemd-boot loader configuration",
		Long: `sdbootctl reads and rewrites the systemd-boot loader configuration: the
loader.conf default entry and menu timeout, and the per-entry files describing
bootable kernels. All writes replace files atomically so an interrupted run
never leaves a half-written boot configuration behind.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.InitGlobalFlags(cmd)

	cmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newStatusCmd(),
		newCreateCmd(),
		newRemoveCmd(),
		newSetDefaultCmd(),
		newSetTimeoutCmd(),
	)
	return cmd
}

// backend bundles what every subcommand needs: the resolved global config and
// a collection bound to the configured loader root.
type backend struct {
	cfg        *config.Global
	log        *zap.Logger
	collection *sdboot.Collection
}

func newBackend() (*backend, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}
	log := logger.New(cfg.Log)
	return &backend{
		cfg:        cfg,
		log:        log,
		collection: sdboot.New(cfg.LoaderRoot(), sdboot.WithLogger(log)),
	}, nil
}

func (b *backend) close() {
	b.log.Sync()
}
