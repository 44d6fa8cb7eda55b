package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mcp-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-mcp-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAuditRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockToolInvocationRepository(ctrl)

	var saved *domain.ToolInvocation
	repo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(invocation *domain.ToolInvocation) error {
			saved = invocation
			return nil
		})

	recorder := NewAuditRecorder(repo)
	recorder.Record(context.Background(), "execute_gaql", "1234567890", 250*time.Millisecond, nil)

	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "execute_gaql", saved.Tool)
	assert.Equal(t, "1234567890", saved.CustomerID)
	assert.Equal(t, int64(250), saved.DurationMS)
	assert.Empty(t, saved.Error)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestAuditRecorder_RecordError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockToolInvocationRepository(ctrl)

	var saved *domain.ToolInvocation
	repo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(invocation *domain.ToolInvocation) error {
			saved = invocation
			return nil
		})

	recorder := NewAuditRecorder(repo)
	recorder.Record(context.Background(), "update_campaign_status", "1234567890", time.Millisecond, assert.AnError)

	require.NotNil(t, saved)
	assert.Equal(t, assert.AnError.Error(), saved.Error)
}

func TestAuditRecorder_SaveFailureDoesNotPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockToolInvocationRepository(ctrl)

	repo.EXPECT().Save(gomock.Any()).Return(assert.AnError)

	recorder := NewAuditRecorder(repo)
	recorder.Record(context.Background(), "execute_gaql", "", time.Millisecond, nil)
}
