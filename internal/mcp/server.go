package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-mcp-api/internal/config"
)

const (
	serverName    = "ads-mcp"
	serverVersion = "0.1.0"
)

type registrationModule struct {
	name     string
	register func(*mcp.Server, *deps)
}

// deps carries what every tool handler needs. Handlers validate input and
// shape output; the integrator owns the API payloads.
type deps struct {
	cfg        config.GoogleAds
	integrator googleads.Integrator
	recorder   Recorder
}

// New builds the MCP server with the full tool surface registered.
func New(cfg config.GoogleAds, integrator googleads.Integrator, recorder Recorder) *mcp.Server {
	if recorder == nil {
		recorder = NopRecorder{}
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	d := &deps{
		cfg:        cfg,
		integrator: integrator,
		recorder:   recorder,
	}

	modules := []registrationModule{
		{name: "accounts", register: registerAccountTools},
		{name: "reporting", register: registerReportingTools},
		{name: "campaigns", register: registerCampaignTools},
		{name: "ad-groups", register: registerAdGroupTools},
		{name: "ads", register: registerAdTools},
		{name: "keywords", register: registerKeywordTools},
		{name: "audiences", register: registerAudienceTools},
		{name: "conversions", register: registerConversionTools},
		{name: "change-history", register: registerChangeHistoryTools},
		{name: "recommendations", register: registerRecommendationTools},
		{name: "keyword-planner", register: registerKeywordPlannerTools},
	}

	for _, module := range modules {
		module.register(server, d)
		logrus.WithField("module", module.name).Debug("mcp: tool module registered")
	}

	return server
}
