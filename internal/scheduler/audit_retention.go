package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mcp-api/infrastructure/repository"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

// AuditRetentionConfig holds the pruning schedule and retention window.
type AuditRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
}

// AuditRetentionService prunes old tool invocation records on a schedule.
type AuditRetentionService struct {
	scheduler      *gocron.Scheduler
	config         AuditRetentionConfig
	invocationRepo repository.ToolInvocationRepository
	pruneRunning   bool
	pruneMutex     sync.Mutex
	lastPrunedAt   time.Time
}

func NewAuditRetentionService(
	invocationRepo repository.ToolInvocationRepository,
	appConfig *config.Config,
) *AuditRetentionService {
	retentionConfig := AuditRetentionConfig{
		CronSchedule:  appConfig.Audit.RetentionCron,
		RetentionDays: appConfig.Audit.RetentionDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
	}).Info("audit retention scheduler configured")

	return &AuditRetentionService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         retentionConfig,
		invocationRepo: invocationRepo,
	}
}

// Start schedules the pruning job and stops it when the context ends.
func (s *AuditRetentionService) Start(ctx context.Context) error {
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneOldInvocations()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule audit retention pruning: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping audit retention scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AuditRetentionService) pruneOldInvocations() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("audit retention pruning already running, skipping")
		return
	}
	s.pruneRunning = true
	s.pruneMutex.Unlock()

	defer func() {
		s.pruneMutex.Lock()
		s.pruneRunning = false
		s.lastPrunedAt = time.Now()
		s.pruneMutex.Unlock()
	}()

	deleted, err := s.invocationRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("audit retention pruning failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
	}).Info("audit retention pruning completed")
}
