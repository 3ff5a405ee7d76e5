package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"taskring/internal/config"
	"taskring/internal/logging"
	"taskring/internal/storage"
	"taskring/internal/tasklist"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	dbPath     string
	filter     string
	noSeed     bool
}

// session is the loaded config, logger, task list and optional snapshot store.
type session struct {
	cfg   config.Config
	log   *log.Logger
	tasks *tasklist.Store
	db    *storage.Store

	closers []func() error
}

func openSession(ctx context.Context, o *rootOptions) (*session, error) {
	path := o.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.filter != "" {
		cfg.DefaultFilter = o.filter
	}
	if o.noSeed {
		cfg.Seed = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: logger, closers: []func() error{closeLog}}
	logger.Info("starting", "config", path, "db", cfg.DBPath)

	var restored []tasklist.Task
	saved := false
	if strings.TrimSpace(cfg.DBPath) != "" {
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open database: %w", err)
		}
		s.db = db
		s.closers = append(s.closers, db.Close)
		restored, saved, err = db.Load(ctx)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("load tasks: %w", err)
		}
	}

	switch {
	case saved:
		s.tasks = tasklist.New(restored...)
		logger.Debug("restored tasks", "count", len(restored))
	case cfg.Seed:
		s.tasks = tasklist.New(tasklist.Seed()...)
	default:
		s.tasks = tasklist.New()
	}
	return s, nil
}

// Close releases the database and log file, newest first.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
