package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/assignment-service/internal/models"
)

// recordingConn is a minimal driver.Conn that serves canned results for the
// three statements CreateWithinLimit issues and records the call order.
type recordingConn struct {
	existing int64 // prior submissions for the assignment/user pair
	calls    []string
	inserts  int
}

type recordingConnector struct {
	conn *recordingConn
}

func (c *recordingConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c *recordingConnector) Driver() driver.Driver                        { return nil }

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements not supported")
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) Begin() (driver.Tx, error) {
	c.calls = append(c.calls, "begin")
	return &recordingTx{conn: c}, nil
}

func (c *recordingConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	switch {
	case strings.Contains(query, "FOR UPDATE"):
		c.calls = append(c.calls, "lock")
		return &singleRow{value: "assignment-1"}, nil
	case strings.Contains(query, "COUNT(*)"):
		c.calls = append(c.calls, "count")
		return &singleRow{value: c.existing}, nil
	}
	return nil, errors.New("unexpected query: " + query)
}

func (c *recordingConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	if !strings.Contains(query, "INSERT INTO submissions") {
		return nil, errors.New("unexpected exec: " + query)
	}
	c.calls = append(c.calls, "insert")
	c.inserts++
	return driver.RowsAffected(1), nil
}

type recordingTx struct {
	conn *recordingConn
}

func (t *recordingTx) Commit() error {
	t.conn.calls = append(t.conn.calls, "commit")
	return nil
}

func (t *recordingTx) Rollback() error {
	t.conn.calls = append(t.conn.calls, "rollback")
	return nil
}

type singleRow struct {
	value driver.Value
	done  bool
}

func (r *singleRow) Columns() []string { return []string{"value"} }
func (r *singleRow) Close() error      { return nil }

func (r *singleRow) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	dest[0] = r.value
	r.done = true
	return nil
}

func newRecordingRepo(existing int64) (SubmissionRepository, *recordingConn) {
	conn := &recordingConn{existing: existing}
	db := sql.OpenDB(&recordingConnector{conn: conn})
	return NewSubmissionRepository(db, zerolog.Nop()), conn
}

func sampleSubmission() *models.Submission {
	now := time.Now().UTC()
	return &models.Submission{
		ID:                "submission-1",
		AssignmentID:      "assignment-1",
		UserID:            "user-1",
		SubmissionURL:     "https://example.com/solution.zip",
		SubmissionDate:    now,
		SubmissionUpdated: now,
	}
}

func TestCreateWithinLimitLocksAssignmentBeforeCounting(t *testing.T) {
	repo, conn := newRecordingRepo(0)

	inserted, err := repo.CreateWithinLimit(context.Background(), sampleSubmission(), 1)
	require.NoError(t, err)
	assert.True(t, inserted)

	assert.Equal(t, []string{"begin", "lock", "count", "insert", "commit"}, conn.calls)
}

func TestCreateWithinLimitRefusesAtLimit(t *testing.T) {
	repo, conn := newRecordingRepo(3)

	inserted, err := repo.CreateWithinLimit(context.Background(), sampleSubmission(), 3)
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.Zero(t, conn.inserts, "no insert once the limit is reached")
	assert.Contains(t, conn.calls, "lock", "limit check must hold the assignment row lock")
	assert.NotContains(t, conn.calls, "commit")
	assert.Contains(t, conn.calls, "rollback")
}
