package candidates

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	apperrors "taginput/internal/errors"
)

// DefaultQuery selects every distinct label. The query must return a single
// text column.
const DefaultQuery = `SELECT DISTINCT label FROM labels ORDER BY label`

// SQLiteSource reads candidates from a SQLite database opened read-only in
// WAL mode, so it never contends with a writer that owns the file.
type SQLiteSource struct {
	dbPath string
	dsn    string
	query  string
}

// NewSQLiteSource returns a source for dbPath. An empty query uses
// DefaultQuery.
func NewSQLiteSource(dbPath, query string) *SQLiteSource {
	trimmed := strings.TrimSpace(dbPath)
	if strings.TrimSpace(query) == "" {
		query = DefaultQuery
	}
	return &SQLiteSource{
		dbPath: trimmed,
		dsn:    buildReadOnlyDSN(trimmed),
		query:  query,
	}
}

// buildReadOnlyDSN creates a read-only WAL DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("cache", "shared")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database path.
func (s *SQLiteSource) Path() string {
	return s.dbPath
}

func (s *SQLiteSource) openDB(ctx context.Context) (*sql.DB, error) {
	if s.dbPath == "" {
		return nil, apperrors.New(apperrors.CodeSourceUnavailable, "candidate database path is empty", nil)
	}
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeSourceUnavailable, "open candidate db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeSourceUnavailable, fmt.Sprintf("ping candidate db %s", s.dbPath), err)
	}
	return db, nil
}

// Load runs the query and returns the de-duplicated results in row order.
// NULL values are skipped.
func (s *SQLiteSource) Load(ctx context.Context) (Static, error) {
	db, err := s.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeQueryFailed, "query candidates", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var values []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, apperrors.New(apperrors.CodeQueryFailed, "scan candidate", err)
		}
		if v.Valid {
			values = append(values, v.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeQueryFailed, "iterate candidates", err)
	}
	return NewStatic(values...), nil
}
