package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mcp-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-mcp-api/infrastructure/repository"
	"github.com/vfg2006/ads-mcp-api/internal/api"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	adsmcp "github.com/vfg2006/ads-mcp-api/internal/mcp"
	"github.com/vfg2006/ads-mcp-api/internal/scheduler"
	"github.com/vfg2006/ads-mcp-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.SetLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenManager := adsclient.NewTokenManager(cfg.GoogleAds)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	adsClient := adsclient.NewClient(cfg.GoogleAds, tokenManager)
	adsIntegrator := googleads.New(cfg.GoogleAds, adsClient)

	recorder := auditRecorder(ctx, cfg)

	mcpServer := adsmcp.New(cfg.GoogleAds, adsIntegrator, recorder)

	server, err := api.New(cfg, mcpServer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// auditRecorder wires the optional Postgres audit trail. When auditing is
// disabled or the database is unreachable the server still runs, it just
// records nothing.
func auditRecorder(ctx context.Context, cfg *config.Config) adsmcp.Recorder {
	if !cfg.Audit.Enabled {
		return adsmcp.NopRecorder{}
	}

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("failed to connect to PostgreSQL, audit trail disabled")
		return adsmcp.NopRecorder{}
	}

	if err := pgConn.Ping(ctx); err != nil {
		logrus.WithError(err).Error("failed to ping PostgreSQL, audit trail disabled")
		return adsmcp.NopRecorder{}
	}

	invocationRepo, err := repository.NewToolInvocationRepository(pgConn)
	if err != nil {
		logrus.WithError(err).Error("failed to prepare audit repository, audit trail disabled")
		return adsmcp.NopRecorder{}
	}

	retentionService := scheduler.NewAuditRetentionService(invocationRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start audit retention scheduler")
	}

	logrus.Info("audit trail enabled")
	return adsmcp.NewAuditRecorder(invocationRepo)
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
