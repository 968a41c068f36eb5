package app

import (
	"log/slog"

	"ledger_go/internal/infra"
	"ledger_go/internal/infra/storage"
)

// Bootstrap orchestrates the application startup sequence.
type Bootstrap struct {
	Config  *infra.Config
	Archive *storage.Archive
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads the configuration, installs the logger and, when
// enabled, opens the event archive.
func (b *Bootstrap) Initialize() error {
	cfg, err := infra.LoadConfig("configs/config.yaml")
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	if cfg.Archive.Enabled {
		archive, err := storage.NewArchive(cfg.Archive.Path)
		if err != nil {
			return err
		}
		b.Archive = archive
		slog.Info("event archive ready", slog.String("path", cfg.Archive.Path))
	}

	return nil
}
