package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/scout-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS seen_urls (
	url          TEXT PRIMARY KEY,
	item_type    TEXT NOT NULL DEFAULT 'article',
	last_updated DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	finished_at DATETIME,
	stats       TEXT
);

CREATE INDEX IF NOT EXISTS idx_seen_urls_item_type ON seen_urls(item_type);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) IsSeen(ctx context.Context, url string) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM seen_urls WHERE url = ? LIMIT 1`, url,
	)
	var one int
	err := row.Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrap(err, "sqlite: is seen")
	}
	return true, nil
}

// MarkSeen upserts the seen record. Repeated calls for the same URL update
// last_updated rather than adding rows.
func (s *SQLiteStore) MarkSeen(ctx context.Context, url, itemType string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO seen_urls (url, item_type, last_updated) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET item_type = excluded.item_type, last_updated = excluded.last_updated`,
		url, itemType, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: mark seen %s", url)
}

func (s *SQLiteStore) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_type, COUNT(*) FROM seen_urls GROUP BY item_type`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: stats")
	}
	defer rows.Close()

	stats := make(map[string]int)
	total := 0
	for rows.Next() {
		var itemType string
		var count int
		if err := rows.Scan(&itemType, &count); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan stats")
		}
		stats[itemType] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: stats iterate")
	}
	stats["total"] = total
	return stats, nil
}

func (s *SQLiteStore) CreateRun(ctx context.Context) (*model.RunRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		id, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &model.RunRecord{ID: id, StartedAt: now}, nil
}

func (s *SQLiteStore) FinishRun(ctx context.Context, runID string, stats *model.RunStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal run stats")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, stats = ? WHERE id = ?`,
		time.Now().UTC(), string(statsJSON), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: finish run %s", runID)
	}
	return checkRowsAffected(res, "run", runID)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, stats FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.RunRecord
	for rows.Next() {
		var r model.RunRecord
		var finishedAt sql.NullTime
		var statsJSON sql.NullString
		if err := rows.Scan(&r.ID, &r.StartedAt, &finishedAt, &statsJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			r.FinishedAt = &t
		}
		if statsJSON.Valid {
			r.Stats = &model.RunStats{}
			if err := json.Unmarshal([]byte(statsJSON.String), r.Stats); err != nil {
				return nil, eris.Wrap(err, "sqlite: unmarshal run stats")
			}
		}
		runs = append(runs, r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
