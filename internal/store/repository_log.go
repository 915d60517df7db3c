package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// logRepository appends audit entries to the "logs" table.
type logRepository struct {
	*DB
	logger *logger.Logger
}

func NewLogRepository(db *DB, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLog inserts entry. A failure the classifier marks as [Retryable] is
// attempted once more before the error is returned.
func (r *logRepository) SaveLog(ctx context.Context, entry models.LogEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLogQuery(r.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "logRepository.SaveLog").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.ExecContext(ctx, query, args...)
	if err != nil && r.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "logRepository.SaveLog").Msg("retrying audit log insert")
		_, err = r.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "logRepository.SaveLog").Msg("failed to insert audit log entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
