package mcp

import (
	"context"
	"log/slog"
	"time"

	mcp "github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/mcp-go/server"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/revive"
)

// Server wraps the MCP server with ad server operations
type Server struct {
	mcpServer *server.Server
	service   *revive.Service
	logger    *slog.Logger
}

// Config contains configuration for the MCP server
type Config struct {
	Service *revive.Service
	Version string
	Logger  *slog.Logger
}

// NewServer creates a new MCP server exposing the ad server tools
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		service: cfg.Service,
		logger:  logger,
	}

	s.mcpServer = server.New(server.Info{
		Name:    "revive-mcp",
		Version: version,
	}, server.WithInstructions(`
revive-mcp manages a Revive Adserver over its XML-RPC API.
Authentication is handled by the server; tools never take credentials.

Available tools:
- revive_campaign_create / revive_campaign_list / revive_campaign_update
- revive_zone_configure / revive_zone_list / revive_zone_update
- revive_banner_upload / revive_banner_list / revive_banner_update
- revive_targeting_set: Apply targeting rules to a campaign or banner
- revive_stats_generate: Delivery statistics by hour, day, week or month
- revive_advertiser_list / revive_publisher_list

Resources campaign://list, zone://list and banner://list hold JSON listings.

Every tool returns {"success": bool, "data": ..., "error": "..."}.
List tools accept limit, offset, sortBy and sortOrder. Dates use YYYY-MM-DD.
`))

	s.registerTools()
	s.registerResources()

	return s
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	// Campaigns
	s.mcpServer.Tool("revive_campaign_create").
		Description("Create a new advertising campaign").
		Handler(handle(s, "revive_campaign_create", s.handleCampaignCreate))

	s.mcpServer.Tool("revive_campaign_list").
		Description("List campaigns with optional filtering, sorting and pagination").
		Handler(handle(s, "revive_campaign_list", s.handleCampaignList))

	s.mcpServer.Tool("revive_campaign_update").
		Description("Update an existing campaign. Only supplied fields change.").
		Handler(handle(s, "revive_campaign_update", s.handleCampaignUpdate))

	// Zones
	s.mcpServer.Tool("revive_zone_configure").
		Description("Create a new ad zone on a publisher website").
		Handler(handle(s, "revive_zone_configure", s.handleZoneConfigure))

	s.mcpServer.Tool("revive_zone_list").
		Description("List zones with optional filtering, sorting and pagination").
		Handler(handle(s, "revive_zone_list", s.handleZoneList))

	s.mcpServer.Tool("revive_zone_update").
		Description("Update zone settings. Only supplied fields change.").
		Handler(handle(s, "revive_zone_update", s.handleZoneUpdate))

	// Banners
	s.mcpServer.Tool("revive_banner_upload").
		Description("Create a banner in a campaign").
		Handler(handle(s, "revive_banner_upload", s.handleBannerUpload))

	s.mcpServer.Tool("revive_banner_list").
		Description("List the banners of a campaign").
		Handler(handle(s, "revive_banner_list", s.handleBannerList))

	s.mcpServer.Tool("revive_banner_update").
		Description("Update banner settings. Only supplied fields change.").
		Handler(handle(s, "revive_banner_update", s.handleBannerUpdate))

	// Targeting and reporting
	s.mcpServer.Tool("revive_targeting_set").
		Description("Set targeting rules for a campaign or banner").
		Handler(handle(s, "revive_targeting_set", s.handleTargetingSet))

	s.mcpServer.Tool("revive_stats_generate").
		Description("Generate a delivery statistics report").
		Handler(handle(s, "revive_stats_generate", s.handleStatsGenerate))

	// Partners
	s.mcpServer.Tool("revive_advertiser_list").
		Description("List the advertisers of the configured agency").
		Handler(handle(s, "revive_advertiser_list", s.handleAdvertiserList))

	s.mcpServer.Tool("revive_publisher_list").
		Description("List the publishers (websites) of the configured agency").
		Handler(handle(s, "revive_publisher_list", s.handlePublisherList))
}

// handle wraps a tool handler with a request id and outcome logging. Failed
// operations are reported in the Result, never as a handler error.
func handle[In, Out any](s *Server, tool string, fn func(context.Context, In) domain.Result[Out]) func(context.Context, In) (domain.Result[Out], error) {
	return func(ctx context.Context, in In) (domain.Result[Out], error) {
		logger := s.logger.With("tool", tool, "request_id", uuid.NewString())
		start := time.Now()
		logger.Debug("tool invoked")

		res := fn(ctx, in)

		if res.Success {
			logger.Info("tool completed", "duration", time.Since(start))
		} else {
			logger.Warn("tool failed",
				"duration", time.Since(start),
				"kind", domain.Kind(res.Err()),
				"error", res.Error)
		}
		return res, nil
	}
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

// ServeHTTP starts the MCP server on HTTP (alternative transport)
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr)
}

// GetMCPServer returns the underlying MCP server (for testing)
func (s *Server) GetMCPServer() *server.Server {
	return s.mcpServer
}
