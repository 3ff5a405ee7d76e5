package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"taskring/internal/tasklist"
)

// Saver receives the full list after every mutation.
type Saver interface {
	Save(ctx context.Context, tasks []tasklist.Task) error
}

type Option func(*Model)

func WithSaver(s Saver) Option {
	return func(m *Model) {
		m.saver = s
	}
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock overrides the date shown in the header.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithTheme(t Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}
