package database

import (
	"context"
	"fmt"
	"strings"

	"clovasummary/internal/domain"
)

const defaultListLimit = 20

func (d *Database) AddSummary(ctx context.Context, record domain.SummaryRecord) (int64, error) {
	query := `insert into summaries (url, title, language, model, summary)
	values (?, ?, ?, ?, ?)`

	res, err := d.db.ExecContext(ctx, query,
		strings.TrimSpace(record.URL),
		strings.TrimSpace(record.Title),
		record.Language,
		record.Model,
		record.Summary)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return res.LastInsertId()
}

func (d *Database) HasSummary(ctx context.Context, url string) (bool, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return false, nil
	}

	query := "select exists(select 1 from summaries where url = ?)"

	var exists bool
	if err := d.db.QueryRowContext(ctx, query, url).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to scan row: %w", err)
	}

	return exists, nil
}

func (d *Database) ListSummaries(ctx context.Context, limit int) ([]domain.SummaryRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `select id, url, title, language, model, summary, created_at
	from summaries
	order by created_at desc, id desc
	limit ?`

	rows, err := d.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() {
		if err = rows.Close(); err != nil {
			d.log.ErrorContext(ctx, "Failed to close rows",
				"error", err,
				"limit", limit,
				"operation", "ListSummaries")
		}
	}()

	var records []domain.SummaryRecord
	for rows.Next() {
		var r domain.SummaryRecord
		if err = rows.Scan(&r.ID, &r.URL, &r.Title, &r.Language, &r.Model, &r.Summary, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return records, nil
}
