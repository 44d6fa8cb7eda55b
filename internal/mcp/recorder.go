package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mcp-api/infrastructure/repository"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"github.com/vfg2006/ads-mcp-api/internal/domain"
	"github.com/vfg2006/ads-mcp-api/pkg/utils"
)

// Recorder persists tool invocations for the audit trail. Recording is
// best effort and never fails the tool call.
type Recorder interface {
	Record(ctx context.Context, tool, customerID string, duration time.Duration, callErr error)
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, time.Duration, error) {}

type AuditRecorder struct {
	repository repository.ToolInvocationRepository
}

func NewAuditRecorder(repo repository.ToolInvocationRepository) *AuditRecorder {
	return &AuditRecorder{repository: repo}
}

func (r *AuditRecorder) Record(_ context.Context, tool, customerID string, duration time.Duration, callErr error) {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("audit: failed to generate invocation id")
		return
	}

	invocation := &domain.ToolInvocation{
		ID:         id,
		Tool:       tool,
		CustomerID: customerID,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if callErr != nil {
		invocation.Error = callErr.Error()
	}

	if err := r.repository.Save(invocation); err != nil {
		logrus.WithError(err).WithField("tool", tool).Warn("audit: failed to record tool invocation")
	}
}

// customerScoped lets the instrumentation read the target account off any
// input that carries one.
type customerScoped interface {
	customer() string
}

// instrument wraps a handler with invocation recording.
func instrument[I any, O any](d *deps, tool string, handler mcp.ToolHandlerFor[I, O]) mcp.ToolHandlerFor[I, O] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input I) (*mcp.CallToolResult, O, error) {
		start := time.Now()
		result, output, err := handler(ctx, req, input)

		customerID := ""
		if scoped, ok := any(input).(customerScoped); ok {
			customerID = config.NormalizeCustomerID(scoped.customer())
		}
		d.recorder.Record(ctx, tool, customerID, time.Since(start), err)

		return result, output, err
	}
}
