package repository

import (
	"context"
	"errors"
	"servicehub/internal/models"
	"servicehub/internal/shared"
	"time"

	"github.com/sirupsen/logrus"
)

// Logged traces every call made to another Repository at debug level.
// Alerting on server errors belongs to the caller; this is a call trace only.
type Logged struct {
	next    Repository
	logger  *logrus.Logger
	backend string
}

var _ Repository = (*Logged)(nil)

// WithLogging decorates next. backend names the wrapped implementation in log fields.
func WithLogging(next Repository, logger *logrus.Logger, backend string) *Logged {
	return &Logged{next: next, logger: logger, backend: backend}
}

func (l *Logged) Services(ctx context.Context) ([]models.Service, error) {
	start := time.Now()
	services, err := l.next.Services(ctx)
	l.trace(l.entry("services", start).WithField("count", len(services)), err)
	return services, err
}

func (l *Logged) Service(ctx context.Context, id uint32) (models.Service, error) {
	start := time.Now()
	svc, err := l.next.Service(ctx, id)
	l.trace(l.entry("service", start).WithField("id", id), err)
	return svc, err
}

func (l *Logged) entry(operation string, start time.Time) *logrus.Entry {
	return l.logger.WithFields(logrus.Fields{
		"operation":   operation,
		"backend":     l.backend,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

func (l *Logged) trace(entry *logrus.Entry, err error) {
	switch {
	case err == nil:
		entry.Debug("repository call completed")
	case errors.Is(err, shared.ErrMissing):
		entry.Debug("repository call found no record")
	default:
		entry.WithField("error", err.Error()).Debug("repository call failed")
	}
}
