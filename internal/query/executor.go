package query

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ovtools/ovmcp/internal/envelope"
	"github.com/ovtools/ovmcp/internal/log"
)

// ResultSet is the payload shape of a successful query.
type ResultSet struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
}

// Executor runs guarded read-only queries against result databases.
type Executor struct {
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// NewExecutor creates an Executor with the given row limits.
func NewExecutor(defaultLimit, maxLimit int) *Executor {
	return &Executor{
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       log.WithComponent("query"),
	}
}

// Run classifies the statement, opens the database read-only, and executes
// it. A LIMIT clause is appended when the statement has none.
func (e *Executor) Run(ctx context.Context, dbpath, sqlText string, limit int) (*ResultSet, error) {
	cleaned, err := ReadOnlyStatement(sqlText)
	if err != nil {
		return nil, err
	}

	// sqlite creates missing database files on open; a typo'd path must
	// not silently produce an empty database.
	if _, err := os.Stat(dbpath); err != nil {
		return nil, envelope.Errorf(envelope.InvalidInput, "result database not found: %s", dbpath)
	}

	if limit <= 0 {
		limit = e.defaultLimit
	}
	if limit > e.maxLimit {
		limit = e.maxLimit
	}

	stmt, err := withLimit(cleaned, limit)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", dbpath))
	if err != nil {
		return nil, envelope.Errorf(envelope.ExecutionError, "open result database: %v", err)
	}
	defer db.Close()

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(pctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return nil, envelope.Errorf(envelope.ExecutionError, "set busy_timeout: %v", err)
	}

	start := time.Now()
	rows, err := db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, envelope.Errorf(envelope.ExecutionError, "query failed: %v", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, envelope.Errorf(envelope.ExecutionError, "read columns: %v", err)
	}

	result := &ResultSet{
		Columns: columns,
		Rows:    make([]map[string]any, 0, 16),
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, envelope.Errorf(envelope.ExecutionError, "scan row: %v", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, envelope.Errorf(envelope.ExecutionError, "iterate rows: %v", err)
	}

	result.RowCount = len(result.Rows)
	e.logger.Debug("query executed",
		"db", dbpath, "rows", result.RowCount, "elapsed", time.Since(start))
	return result, nil
}

// withLimit appends a LIMIT clause when the statement carries none.
func withLimit(sqlText string, limit int) (string, error) {
	tokens, err := topLevelKeywords(sqlText)
	if err != nil {
		return "", envelope.Errorf(envelope.DisallowedOperation, "statement rejected: %v", err)
	}
	for _, tok := range tokens {
		if tok.word == "LIMIT" {
			return sqlText, nil
		}
	}
	return fmt.Sprintf("%s LIMIT %d", sqlText, limit), nil
}

// normalizeValue makes driver values JSON-friendly.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
