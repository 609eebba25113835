package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/hoopreel/internal/app"
	"github.com/llehouerou/hoopreel/internal/browser"
	"github.com/llehouerou/hoopreel/internal/config"
	"github.com/llehouerou/hoopreel/internal/errmsg"
	"github.com/llehouerou/hoopreel/internal/highlights"
	"github.com/llehouerou/hoopreel/internal/history"
	"github.com/llehouerou/hoopreel/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; the real environment always wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.New(errmsg.FormatWith(errmsg.OpConfigLoad, ".env", err))
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	logger, logFile, err := logging.New(cfg.Log.Level, logPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogOpen, logPath, err))
	}
	defer logFile.Close()

	keyState := "missing"
	if cfg.HasAPIKey() {
		keyState = "set"
	}
	logger.WithField(config.APIKeyEnv, keyState).Info("starting")

	ctx := context.Background()
	client := highlights.New(ctx, highlights.Options{
		APIKey:    cfg.YouTube.APIKey,
		Endpoint:  cfg.YouTube.Endpoint,
		Qualifier: cfg.YouTube.Qualifier,
		Logger:    logger,
	})

	deps := app.Deps{
		Searcher:    client,
		OpenURL:     browser.Open,
		Logger:      logger,
		MaxResults:  cfg.MaxResults(),
		Order:       cfg.DefaultOrder(),
		HistorySize: cfg.HistorySize(),
	}
	if store := openHistory(cfg, logger); store != nil {
		defer store.Close()
		deps.History = store
	}

	p := tea.NewProgram(app.New(ctx, deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("program exited with error")
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	logger.Info("exiting")
	return nil
}

// openHistory opens the search history store. Failures are logged and the
// app runs without history.
func openHistory(cfg *config.Config, logger logrus.FieldLogger) *history.Store {
	if !cfg.HistoryEnabled() {
		return nil
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		logger.WithError(err).Warn(errmsg.Format(errmsg.OpHistoryLoad, err))
		return nil
	}
	store, err := history.Open(path, cfg.HistorySize())
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn(errmsg.Format(errmsg.OpHistoryLoad, err))
		return nil
	}
	return store
}
