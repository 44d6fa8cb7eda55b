package domain

import "time"

// ToolInvocation is one audited MCP tool call.
type ToolInvocation struct {
	ID         string
	Tool       string
	CustomerID string
	DurationMS int64
	Error      string
	CreatedAt  time.Time
}
