package query

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovtools/ovmcp/internal/envelope"
)

// newResultDB creates a small result database in the style of an
// annotation run output.
func newResultDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "result.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE variant (
  base__uid    INTEGER PRIMARY KEY,
  base__chrom  TEXT NOT NULL,
  base__pos    INTEGER NOT NULL,
  base__hugo   TEXT
);`)
	require.NoError(t, err)

	for i, row := range []struct {
		chrom string
		pos   int
		hugo  string
	}{
		{"chr1", 100, "BRCA1"},
		{"chr1", 250, "BRCA1"},
		{"chr7", 140453136, "BRAF"},
		{"chr17", 7577120, "TP53"},
		{"chrX", 5000, "DMD"},
	} {
		_, err = db.Exec(
			"INSERT INTO variant (base__uid, base__chrom, base__pos, base__hugo) VALUES (?, ?, ?, ?)",
			i+1, row.chrom, row.pos, row.hugo)
		require.NoError(t, err)
	}

	return path
}

func countVariants(t *testing.T, path string) int {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM variant").Scan(&n))
	return n
}

func TestRunSelect(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(100, 10000)

	res, err := e.Run(context.Background(), path, "SELECT base__chrom, base__hugo FROM variant ORDER BY base__uid", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"base__chrom", "base__hugo"}, res.Columns)
	assert.Equal(t, 5, res.RowCount)
	assert.Equal(t, "BRCA1", res.Rows[0]["base__hugo"])
}

func TestRunAppendsDefaultLimit(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(3, 10000)

	res, err := e.Run(context.Background(), path, "SELECT * FROM variant", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.RowCount)
}

func TestRunClampsLimitToMax(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(100, 2)

	res, err := e.Run(context.Background(), path, "SELECT * FROM variant", 500)
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)
}

func TestRunRespectsExistingLimit(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(100, 10000)

	res, err := e.Run(context.Background(), path, "SELECT * FROM variant LIMIT 1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RowCount)
}

func TestRunRejectsMutationWithoutTouchingData(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(100, 10000)

	_, err := e.Run(context.Background(), path, "DELETE FROM variant", 0)
	require.Error(t, err)

	var ee *envelope.Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, envelope.DisallowedOperation, ee.Category)

	assert.Equal(t, 5, countVariants(t, path))
}

func TestRunMissingDatabase(t *testing.T) {
	e := NewExecutor(100, 10000)

	_, err := e.Run(context.Background(), filepath.Join(t.TempDir(), "nope.sqlite"), "SELECT 1", 0)
	require.Error(t, err)

	var ee *envelope.Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, envelope.InvalidInput, ee.Category)
}

func TestRunBadColumnIsExecutionError(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(100, 10000)

	_, err := e.Run(context.Background(), path, "SELECT no_such_column FROM variant", 0)
	require.Error(t, err)

	var ee *envelope.Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, envelope.ExecutionError, ee.Category)
}

func TestRunIsIdempotent(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(100, 10000)

	first, err := e.Run(context.Background(), path, "SELECT * FROM variant ORDER BY base__uid", 0)
	require.NoError(t, err)
	second, err := e.Run(context.Background(), path, "SELECT * FROM variant ORDER BY base__uid", 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunTrailingSemicolonWithAppendedLimit(t *testing.T) {
	path := newResultDB(t)
	e := NewExecutor(2, 10000)

	res, err := e.Run(context.Background(), path, "SELECT * FROM variant;", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)
}
