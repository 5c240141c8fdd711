package store

import (
	"database/sql"
	"time"
)

// Lifecycle statuses recorded in report_generation_logs. Rows are append
// only: a state transition inserts a new row, existing rows are never
// updated.
const (
	StatusStarted   = "STARTED"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Company is a persisted report subject.
type Company struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// ValuationModel stores the four figures submitted with one request.
type ValuationModel struct {
	ID        int64     `db:"id"`
	CompanyID int64     `db:"company_id"`
	DCF       string    `db:"dcf"`
	CCA       string    `db:"cca"`
	PTM       string    `db:"ptm"`
	ABV       string    `db:"abv"`
	CreatedAt time.Time `db:"created_at"`
}

// GeneratedReport is one persisted report document.
type GeneratedReport struct {
	ID         int64     `db:"id"`
	CompanyID  int64     `db:"company_id"`
	ReportText string    `db:"report_text"`
	CreatedAt  time.Time `db:"created_at"`
}

// GenerationLog is one lifecycle entry for a report run.
type GenerationLog struct {
	ID        int64          `db:"id"`
	CompanyID sql.NullInt64  `db:"company_id"`
	Status    string         `db:"status"`
	Message   sql.NullString `db:"message"`
	CreatedAt time.Time      `db:"created_at"`
}
