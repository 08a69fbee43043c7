package root

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"kidquest/internal/config"
	"kidquest/internal/engine"
	"kidquest/internal/logging"
	"kidquest/internal/storage"
	"kidquest/internal/ui"
)

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	svc := engine.NewService(db, log)

	// Recolor output with the active purchased theme, if any.
	if theme, err := svc.ActiveTheme(ctx); err == nil && theme != nil {
		ui.ApplyTheme(theme.Primary, theme.Secondary, theme.Accent)
	} else if err != nil {
		log.Warn("load active theme", zap.Error(err))
	}

	return svc, cfg, cleanup, nil
}
