// Package cli provides the cobra command surface for previewd.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/previewlab/previewd/internal/adapters/driven/capabilities"
	configfile "github.com/previewlab/previewd/internal/adapters/driven/config/file"
	"github.com/previewlab/previewd/internal/adapters/driven/generator"
	"github.com/previewlab/previewd/internal/adapters/driven/storage/sqlite"
	"github.com/previewlab/previewd/internal/core/ports/driven"
	"github.com/previewlab/previewd/internal/core/ports/driving"
	"github.com/previewlab/previewd/internal/core/services"
	"github.com/previewlab/previewd/internal/logger"
	"github.com/previewlab/previewd/internal/providers"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string

	// previewService is the resolved service; tests inject a stub here.
	previewService driving.PreviewService

	// stopConfigWatch releases the config file watcher started by
	// bootstrap. It runs for the process lifetime; tests stop it early.
	stopConfigWatch func() error
)

var rootCmd = &cobra.Command{
	Use:   "previewd",
	Short: "Resolve and generate file previews",
	Long: `previewd resolves, for a given media type, the ordered set of
providers able to produce a rendered preview, and decides whether any
provider can handle a concrete file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if previewService != nil {
			return nil
		}
		return bootstrap()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.previewd)")
}

// bootstrap wires the default adapters into a preview service.
func bootstrap() error {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Pick up config edits made while the process runs; the service reads
	// keys live, so the next resolution sees the reloaded values.
	if stop, watchErr := cfg.Watch(); watchErr != nil {
		logger.Warn("config watch unavailable: %v", watchErr)
	} else {
		stopConfigWatch = stop
	}

	caps := capabilities.NewEnv()

	previewService = services.NewPreviewService(cfg, caps, providers.Builtins(),
		services.WithGeneratorFactory(func(source driving.ProviderSource) driven.Generator {
			store, err := sqlite.NewStore("")
			if err != nil {
				logger.Warn("preview index unavailable: %v", err)
				return nil
			}
			gen, err := generator.NewLocal(source, store.PreviewStore(), cfg)
			if err != nil {
				logger.Warn("generator unavailable: %v", err)
				return nil
			}
			return gen
		}),
	)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
