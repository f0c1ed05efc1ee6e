package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerSettingsResource(srv, svc)
	registerPanesResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

func registerSettingsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"datestamp://settings",
		"Settings",
		mcp.WithResourceDescription("Date format settings with effective pattern and preview."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerPanesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"datestamp://panes",
		"Panes",
		mcp.WithResourceDescription("Panes open in the session."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		panes, err := svc.ListPanes(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"panes": panes,
			"count": len(panes),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"datestamp://calendar/{month}",
		"Calendar Month",
		mcp.WithTemplateDescription("Calendar grid for a month given as 2006-01."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month, _ := request.Params.Arguments["month"].(string)
		if month == "" {
			return nil, fmt.Errorf("month is required")
		}

		dto, err := svc.Month(ctx, month)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
