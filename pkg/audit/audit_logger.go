package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"employee-profile-backend/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventSubmissionCommitted EventType = "submission_committed"
	EventSubmissionRejected  EventType = "submission_rejected"
	EventSubmissionFailed    EventType = "submission_failed"
	EventReferenceCreated    EventType = "reference_created"
)

// Event represents an audit record
type Event struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "contact", "profile", "reference"
	SubjectValue string // hashed when it carries PII
	RequestID    string
	Details      map[string]interface{}
}

// Logger writes audit events as structured zap entries. It implements domain.SubmissionAuditor.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New wraps an existing zap logger.
func New(zapLogger *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{
		zapLogger:   zapLogger,
		serviceName: serviceName,
		environment: environment,
	}
}

// NewProduction builds a JSON zap logger on stdout.
func NewProduction(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return New(logger, serviceName, environment)
}

// Nop discards every event.
func Nop() *Logger {
	return New(zap.NewNop(), "", "")
}

// Log logs an audit event
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = domain.RequestIDFrom(ctx)
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventSubmissionRejected:
		level = zapcore.WarnLevel
	case EventSubmissionFailed:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

func (l *Logger) SubmissionCommitted(ctx context.Context, profileID uuid.UUID, contact string) {
	l.Log(ctx, Event{
		Event:        EventSubmissionCommitted,
		SubjectType:  "contact",
		SubjectValue: HashValue(contact),
		Details:      map[string]interface{}{"profile_id": profileID.String()},
	})
}

func (l *Logger) SubmissionRejected(ctx context.Context, errors []string, contact string) {
	l.Log(ctx, Event{
		Event:        EventSubmissionRejected,
		SubjectType:  "contact",
		SubjectValue: HashValue(contact),
		Details:      map[string]interface{}{"errors": errors},
	})
}

func (l *Logger) SubmissionFailed(ctx context.Context, stage domain.SubmissionState, cause error) {
	details := map[string]interface{}{"stage": string(stage)}
	if cause != nil {
		details["cause"] = cause.Error()
	}
	l.Log(ctx, Event{
		Event:   EventSubmissionFailed,
		Details: details,
	})
}

func (l *Logger) ReferenceCreated(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID, name string) {
	l.Log(ctx, Event{
		Event:        EventReferenceCreated,
		SubjectType:  "reference",
		SubjectValue: id.String(),
		Details:      map[string]interface{}{"kind": string(kind), "name": name},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// HashValue creates a short SHA256 digest so contacts never reach the logs in clear text.
// Empty input stays empty.
func HashValue(value string) string {
	if value == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
