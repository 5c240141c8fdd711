package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/report"
)

// SaveReport persists one report request and its generated text inside a
// single transaction: company, valuation model, STARTED log, report text,
// COMPLETED log. All inserts succeed or all roll back. After a rollback a
// FAILED log row is written best-effort on the pool; its own failure is
// only logged to the operator, never surfaced.
func (s *Store) SaveReport(ctx context.Context, req report.ReportRequest, reportText string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("report store not initialised")
	}
	logger := common.Logger()

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin report transaction: %w", err)
	}

	companyID, err := s.saveReportTx(ctx, tx, req, reportText)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("store: rollback failed", "error", rbErr)
		}
		s.logStatusBestEffort(ctx, companyID, StatusFailed, "Report generation failed")
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		s.logStatusBestEffort(ctx, companyID, StatusFailed, "Report generation failed")
		return 0, fmt.Errorf("commit report transaction: %w", err)
	}
	logger.Info("store: report persisted", "company_id", companyID)
	return companyID, nil
}

func (s *Store) saveReportTx(ctx context.Context, tx *sqlx.Tx, req report.ReportRequest, reportText string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO companies (name, description) VALUES (?, ?)`,
		req.CompanyName, req.CompanyDescription)
	if err != nil {
		return 0, fmt.Errorf("insert company: %w", err)
	}
	companyID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("company id: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO valuation_models (company_id, dcf, cca, ptm, abv) VALUES (?, ?, ?, ?, ?)`,
		companyID, req.DCF, req.CCA, req.PTM, req.ABV); err != nil {
		return companyID, fmt.Errorf("insert valuation model: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO report_generation_logs (company_id, status, message) VALUES (?, ?, ?)`,
		companyID, StatusStarted, "Report generation started"); err != nil {
		return companyID, fmt.Errorf("insert start log: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO generated_reports (company_id, report_text) VALUES (?, ?)`,
		companyID, reportText); err != nil {
		return companyID, fmt.Errorf("insert report: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO report_generation_logs (company_id, status, message) VALUES (?, ?, ?)`,
		companyID, StatusCompleted, "Report generated successfully"); err != nil {
		return companyID, fmt.Errorf("insert completion log: %w", err)
	}
	return companyID, nil
}

// logStatusBestEffort appends a lifecycle row outside any transaction. A
// zero companyID records an unattributed failure.
func (s *Store) logStatusBestEffort(ctx context.Context, companyID int64, status, message string) {
	var company interface{}
	if companyID > 0 {
		company = companyID
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO report_generation_logs (company_id, status, message) VALUES (?, ?, ?)`,
		company, status, message); err != nil {
		common.Logger().Error("store: failure log write failed", "status", status, "error", err)
	}
}

// CompanyCount reports the number of persisted companies.
func (s *Store) CompanyCount(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("report store not initialised")
	}
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM companies`); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return count, nil
}

// ReportsForCompany returns the persisted reports for a company, newest
// first.
func (s *Store) ReportsForCompany(ctx context.Context, companyID int64) ([]GeneratedReport, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("report store not initialised")
	}
	reports := []GeneratedReport{}
	if err := s.db.SelectContext(ctx, &reports,
		`SELECT * FROM generated_reports WHERE company_id = ? ORDER BY created_at DESC, id DESC`, companyID); err != nil {
		return nil, fmt.Errorf("select reports: %w", err)
	}
	return reports, nil
}

// LogsForCompany returns the lifecycle rows for a company in insertion
// order.
func (s *Store) LogsForCompany(ctx context.Context, companyID int64) ([]GenerationLog, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("report store not initialised")
	}
	logs := []GenerationLog{}
	if err := s.db.SelectContext(ctx, &logs,
		`SELECT * FROM report_generation_logs WHERE company_id = ? ORDER BY id`, companyID); err != nil {
		return nil, fmt.Errorf("select logs: %w", err)
	}
	return logs, nil
}
