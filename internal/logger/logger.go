package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys read by WithContext. The auth middleware stores the actor
// under these keys on the gin context.
const (
	ActorIDKey   = "actor_id"
	ActorRoleKey = "actor_role"
	RequestIDKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger with actor and request information
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if actorID, ok := ctx.Value(ActorIDKey).(string); ok && actorID != "" {
		logger.Entry = logger.Entry.WithField("actor", actorID)
	} else {
		logger.Entry = logger.Entry.WithField("actor", "system")
	}
	if role, ok := ctx.Value(ActorRoleKey).(string); ok && role != "" {
		logger.Entry = logger.Entry.WithField("role", role)
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
