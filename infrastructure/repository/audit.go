package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-mcp-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mcp-api/internal/domain"
)

const toolInvocationsTable = "tool_invocations"

const toolInvocationsSchema = `
	CREATE TABLE IF NOT EXISTS tool_invocations (
		id          VARCHAR(21) PRIMARY KEY,
		tool        TEXT        NOT NULL,
		customer_id TEXT        NOT NULL DEFAULT '',
		duration_ms BIGINT      NOT NULL,
		error       TEXT        NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type ToolInvocationRepository interface {
	Save(invocation *domain.ToolInvocation) error
	DeleteOlderThan(days int) (int64, error)
}

type toolInvocationRepository struct {
	conn *postgres.Connection
}

// NewToolInvocationRepository creates the audit repository and its table
// when missing. The schema is a single table, so no migration runner.
func NewToolInvocationRepository(conn *postgres.Connection) (ToolInvocationRepository, error) {
	if _, err := conn.Exec(toolInvocationsSchema); err != nil {
		return nil, fmt.Errorf("creating tool_invocations table: %w", err)
	}

	return &toolInvocationRepository{conn: conn}, nil
}

func (r *toolInvocationRepository) Save(invocation *domain.ToolInvocation) error {
	query, args, err := squirrel.
		Insert(toolInvocationsTable).
		Columns("id", "tool", "customer_id", "duration_ms", "error", "created_at").
		Values(
			invocation.ID,
			invocation.Tool,
			invocation.CustomerID,
			invocation.DurationMS,
			invocation.Error,
			invocation.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *toolInvocationRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(toolInvocationsTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}

	return rowsAffected, nil
}
