package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-mcp-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newRetentionService(t *testing.T) (*AuditRetentionService, *mocks.MockToolInvocationRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockToolInvocationRepository(ctrl)

	service := NewAuditRetentionService(repo, &config.Config{
		Audit: config.Audit{
			RetentionDays: 90,
			RetentionCron: "0 2 * * *",
		},
	})

	return service, repo
}

func TestPruneOldInvocations(t *testing.T) {
	service, repo := newRetentionService(t)

	repo.EXPECT().DeleteOlderThan(90).Return(int64(12), nil)

	service.pruneOldInvocations()

	assert.False(t, service.lastPrunedAt.IsZero())
	assert.False(t, service.pruneRunning)
}

func TestPruneOldInvocations_RepositoryError(t *testing.T) {
	service, repo := newRetentionService(t)

	repo.EXPECT().DeleteOlderThan(90).Return(int64(0), assert.AnError)

	service.pruneOldInvocations()

	assert.False(t, service.pruneRunning)
}

func TestPruneOldInvocations_SkipsWhenAlreadyRunning(t *testing.T) {
	service, _ := newRetentionService(t)

	service.pruneRunning = true
	service.pruneOldInvocations()
}
