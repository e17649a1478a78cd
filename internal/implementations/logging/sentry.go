package logging

import (
	"context"
	"fmt"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/logging"

	"github.com/getsentry/sentry-go"
)

// SentryLogger forwards every record to the wrapped logger and additionally
// reports errors to Sentry.
type SentryLogger struct {
	logging.Logger
	hub *sentry.Hub
}

func NewSentryLogger(logger logging.Logger, hub *sentry.Hub) *SentryLogger {
	if logger == nil {
		panic(e.NewNilArgumentError("logger"))
	}
	if hub == nil {
		panic(e.NewNilArgumentError("hub"))
	}
	return &SentryLogger{Logger: logger, hub: hub}
}

func (l *SentryLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.Logger.Error(ctx, msg, entries...)

	hub := l.hub
	if ctxHub := sentry.GetHubFromContext(ctx); ctxHub != nil {
		hub = ctxHub
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for _, entry := range entries {
			if err, ok := entry.Value.(error); ok {
				scope.SetExtra(entry.Key, err.Error())
				continue
			}
			scope.SetExtra(entry.Key, fmt.Sprint(entry.Value))
		}
		hub.CaptureMessage(msg)
	})
}
