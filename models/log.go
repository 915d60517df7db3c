package models

import "time"

// LogLevel tags the outcome of a handled request in the audit log.
type LogLevel string

const (
	LogLevelOK         LogLevel = "OK"
	LogLevelNotFound   LogLevel = "NotFound"
	LogLevelBadRequest LogLevel = "BadRequest"
)

// LogEntry is an immutable audit record of a single request outcome.
// Entries are only ever inserted; the application never reads them back.
type LogEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`

	// Exception is the text of the error that ended the request,
	// or an empty string when the request succeeded.
	Exception string `json:"exception"`
}

// TableName returns the name of the database table
// associated with the LogEntry model.
func (l LogEntry) TableName() string {
	return "logs"
}
