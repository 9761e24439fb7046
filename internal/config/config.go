// Package config handles the global command line configuration: flags, their
// environment variable bindings, and the derived loader root path.
package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/efikit/bootconf/internal/logger"
)

const (
	EspKey      = "esp"
	JSONKey     = "json"
	LogLevelKey = "log-level"
	LogFileKey  = "log-file"
)

// Global is the resolved global configuration shared by all subcommands.
type Global struct {
	// ESP is the mount point of the EFI system partition. The loader root
	// (loader.conf plus entries/) lives under <esp>/loader.
	ESP  string        `mapstructure:"esp"`
	JSON bool          `mapstructure:"json"`
	Log  logger.Config `mapstructure:",squash"`
}

// LoaderRoot returns the directory containing loader.conf and entries/.
func (g *Global) LoaderRoot() string {
	return filepath.Join(g.ESP, "loader")
}

// InitGlobalFlags defines the persistent flags and binds them to viper so each
// can also be set through the environment (SDBOOT_ prefix, '-' replaced by '_').
func InitGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(EspKey, "/boot/efi", "The mount point of the EFI system partition containing the loader directory.")
	cmd.PersistentFlags().Bool(JSONKey, false, "Print structured output as JSON instead of a table.")
	cmd.PersistentFlags().Int8(LogLevelKey, 0, "Adjust the logging level (0=Fatal, 1=Error, 2=Warn, 3=Info, 4+=Debug).")
	cmd.PersistentFlags().String(LogFileKey, "", "Send log messages to this file instead of stderr.")
	cmd.PersistentFlags().Int("log-max-size", 100, "Maximum size of the log file in megabytes before it is rotated.")
	cmd.PersistentFlags().Int("log-num-rotated-files", 3, "Maximum number of old log files to keep after rotation.")

	viper.SetEnvPrefix("sdboot")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		viper.BindEnv(flag.Name)
		viper.BindPFlag(flag.Name, flag)
	})
}

// Get resolves the merged flag/environment configuration.
func Get() (*Global, error) {
	var g Global
	if err := viper.Unmarshal(&g, viper.DecodeHook(
		mapstructure.StringToSliceHookFunc(","),
	)); err != nil {
		return nil, err
	}
	return &g, nil
}
