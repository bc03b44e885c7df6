package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/mcp-go/server"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/revive"
)

const jsonMimeType = "application/json"

// registerResources exposes read-only listings as MCP resources
func (s *Server) registerResources() {
	s.mcpServer.Resource("campaign://list").
		Name("Campaign List").
		Description("All campaigns of the configured agency").
		MimeType(jsonMimeType).
		Handler(s.listResource(func(ctx context.Context) (any, error) {
			res := s.service.ListCampaigns(ctx, revive.ListCampaignsRequest{})
			return res.Data, res.Err()
		}))

	s.mcpServer.Resource("zone://list").
		Name("Zone List").
		Description("All zones of the configured agency").
		MimeType(jsonMimeType).
		Handler(s.listResource(func(ctx context.Context) (any, error) {
			res := s.service.ListZones(ctx, revive.ListZonesRequest{})
			return res.Data, res.Err()
		}))

	s.mcpServer.Resource("banner://list").
		Name("Banner List").
		Description("All banners of every campaign of the configured agency").
		MimeType(jsonMimeType).
		Handler(s.listResource(s.allBanners))
}

// allBanners walks every campaign and collects its banners.
func (s *Server) allBanners(ctx context.Context) (any, error) {
	campaigns := s.service.ListCampaigns(ctx, revive.ListCampaignsRequest{})
	if err := campaigns.Err(); err != nil {
		return nil, err
	}

	banners := []domain.Banner{}
	for _, c := range campaigns.Data {
		res := s.service.ListBanners(ctx, revive.ListBannersRequest{CampaignID: c.ID})
		if err := res.Err(); err != nil {
			return nil, err
		}
		banners = append(banners, res.Data...)
	}
	return banners, nil
}

// listResource renders the listing as indented JSON. A failed listing is a
// read error rather than an empty document.
func (s *Server) listResource(list func(context.Context) (any, error)) server.ResourceHandler {
	return func(ctx context.Context, uri string, _ map[string]string) (*server.ResourceContent, error) {
		logger := s.logger.With("resource", uri)

		data, err := list(ctx)
		if err != nil {
			logger.Warn("resource read failed", "kind", domain.Kind(err), "error", err)
			return nil, fmt.Errorf("read %s: %w", uri, err)
		}

		text, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", uri, err)
		}
		logger.Debug("resource read")
		return &server.ResourceContent{
			URI:      uri,
			MimeType: jsonMimeType,
			Text:     string(text),
		}, nil
	}
}
