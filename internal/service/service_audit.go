package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// auditService persists request outcomes through a [store.LogRepository].
type auditService struct {
	logRepository store.LogRepository
	logger        *logger.Logger

	// now is replaced in tests.
	now func() time.Time
}

func NewAuditService(logRepository store.LogRepository, logger *logger.Logger) AuditService {
	return &auditService{
		logRepository: logRepository,
		logger:        logger,
		now:           time.Now,
	}
}

// Record stores an entry stamped with the current UTC time. The write is
// detached from ctx cancellation so that a request that timed out still
// leaves its audit record.
func (s *auditService) Record(ctx context.Context, level models.LogLevel, message string, err error) {
	entry := models.LogEntry{
		Timestamp: s.now().UTC(),
		Level:     level,
		Message:   message,
	}
	if err != nil {
		entry.Exception = err.Error()
	}

	if saveErr := s.logRepository.SaveLog(context.WithoutCancel(ctx), entry); saveErr != nil {
		logger.FromContext(ctx).Err(saveErr).
			Str("level", string(level)).
			Str("message", message).
			Msg("failed to write audit log entry")
	}
}
