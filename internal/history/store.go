// Package history persists per-day point totals in a local sqlite database
// so the dashboard can still draw a chart when a fetch comes back with
// neither an activity feed nor a timeline.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: creating DB dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening DB: %w", err)
	}

	store := NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS point_days (
			account_id TEXT NOT NULL,
			date TEXT NOT NULL,
			points_earned INTEGER NOT NULL,
			points_redeemed INTEGER NOT NULL,
			redemptions_count INTEGER NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (account_id, date)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_point_days_date ON point_days(date);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("history: init schema: %w", err)
		}
	}
	return nil
}

// RecordDays upserts one row per charted day. New fetches overwrite older
// values for the same day, so a window that grows as activity accrues keeps
// the stored history current.
func (s *Store) RecordDays(ctx context.Context, accountID string, rows []core.TimelineRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin tx: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC().Format(time.RFC3339)
	for _, row := range rows {
		if row.Date == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO point_days (account_id, date, points_earned, points_redeemed, redemptions_count, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(account_id, date) DO UPDATE SET
				points_earned = excluded.points_earned,
				points_redeemed = excluded.points_redeemed,
				redemptions_count = excluded.redemptions_count,
				updated_at = excluded.updated_at
		`,
			accountID,
			row.Date,
			row.PointsEarned,
			row.PointsRedeemed,
			row.RedemptionsCount,
			now,
		); err != nil {
			return fmt.Errorf("history: upsert day %s: %w", row.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit tx: %w", err)
	}
	return nil
}

// TimelineSince returns the stored rows for the trailing window, oldest
// first, shaped so they can feed the chart series directly.
func (s *Store) TimelineSince(ctx context.Context, accountID string, days int) ([]core.TimelineRow, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := s.now().UTC().AddDate(0, 0, -days).Format("2006-01-02")

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, points_earned, points_redeemed, redemptions_count
		FROM point_days
		WHERE account_id = ? AND date >= ?
		ORDER BY date ASC
	`, accountID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("history: query timeline: %w", err)
	}
	defer rows.Close()

	var out []core.TimelineRow
	for rows.Next() {
		var row core.TimelineRow
		if err := rows.Scan(&row.Date, &row.PointsEarned, &row.PointsRedeemed, &row.RedemptionsCount); err != nil {
			return nil, fmt.Errorf("history: scan row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate rows: %w", err)
	}
	return out, nil
}
