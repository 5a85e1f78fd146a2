package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLSource reads every row of one table through database/sql.
// Column names go through the same alias table as spreadsheet headers.
type SQLSource struct {
	driver string
	table  string
	db     *sql.DB
}

// NewSQLSource opens (lazily) a connection for the given driver kind.
func NewSQLSource(kind, dsn, table string) (*SQLSource, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%s: DATABASE_DSN is required", kind)
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%s: invalid table name %q", kind, table)
	}

	db, err := sql.Open(kind, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", kind, err)
	}
	return &SQLSource{driver: kind, table: table, db: db}, nil
}

// NewSQLSourceFromDB wraps an already opened handle.
func NewSQLSourceFromDB(driver string, db *sql.DB, table string) (*SQLSource, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%s: invalid table name %q", driver, table)
	}
	return &SQLSource{driver: driver, table: table, db: db}, nil
}

func (s *SQLSource) Name() string { return s.driver + ":" + s.table }

func (s *SQLSource) Rows(ctx context.Context) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+s.table)
	if err != nil {
		return nil, fmt.Errorf("%s: query %s: %w", s.driver, s.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s: columns: %w", s.driver, err)
	}

	out := [][]string{columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", s.driver, err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", s.driver, err)
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (s *SQLSource) Close() error {
	return s.db.Close()
}
