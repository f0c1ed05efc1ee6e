package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/datestamp/pkg/dateformat"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerFormatDateTool(srv, svc)
	registerInsertDateTool(srv, svc)
	registerListPanesTool(srv, svc)
	registerListFormatsTool(srv, svc)
	registerGetSettingsTool(srv, svc)
	registerUpdateSettingsTool(srv, svc)
	registerMonthTool(srv, svc)
}

func registerFormatDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"format_date",
		mcp.WithDescription("Format a day the way it would be inserted into a note."),
		mcp.WithString("date",
			mcp.Description("Day to format: today, tomorrow, +3d, 2025-01-25, 1/25. Defaults to today."),
		),
		mcp.WithString("pattern",
			mcp.Description("Optional pattern such as DD/MM/YYYY. Defaults to the configured format."),
		),
		mcp.WithBoolean("bold",
			mcp.Description("Wrap the result in markdown bold. Defaults to the configured flag."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date    string `json:"date"`
			Pattern string `json:"pattern"`
			Bold    *bool  `json:"bold"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := svc.FormatDate(args.Date, args.Pattern, args.Bold)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerInsertDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"insert_date",
		mcp.WithDescription("Insert a formatted day at the cursor of the note the user is working in."),
		mcp.WithString("date",
			mcp.Description("Day to insert: today, tomorrow, +3d, 2025-01-25, 1/25. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := svc.InsertDate(ctx, args.Date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListPanesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_panes",
		mcp.WithDescription("List the panes open in the session and which one is active."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		panes, err := svc.ListPanes(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"panes": panes,
			"count": len(panes),
		})
	})
}

func registerListFormatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_formats",
		mcp.WithDescription("List the predefined date formats."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type format struct {
			Pattern string `json:"pattern"`
			Label   string `json:"label"`
		}
		presets := dateformat.Presets()
		out := make([]format, 0, len(presets))
		for _, p := range presets {
			out = append(out, format{Pattern: p.Pattern, Label: p.Label})
		}
		return toJSONResult(map[string]any{"formats": out})
	})
}

func registerGetSettingsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_settings",
		mcp.WithDescription("Show the date format settings and a preview."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.GetSettings(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateSettingsTool(srv *server.MCPServer, svc *Service) {
	choices := make([]string, 0)
	for _, p := range dateformat.Presets() {
		choices = append(choices, p.Pattern)
	}
	tool := mcp.NewTool(
		"update_settings",
		mcp.WithDescription("Change the date format settings."),
		mcp.WithString("dateFormat",
			mcp.Description("Predefined format or custom."),
			mcp.Enum(choices...),
		),
		mcp.WithString("customFormat",
			mcp.Description("Pattern used when dateFormat is custom."),
		),
		mcp.WithBoolean("useBoldFormatting",
			mcp.Description("Wrap inserted dates in markdown bold."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			DateFormat        *string `json:"dateFormat"`
			CustomFormat      *string `json:"customFormat"`
			UseBoldFormatting *bool   `json:"useBoldFormatting"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.UpdateSettings(ctx, SettingsPatch{
			DateFormat:        args.DateFormat,
			CustomFormat:      args.CustomFormat,
			UseBoldFormatting: args.UseBoldFormatting,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"show_month",
		mcp.WithDescription("Return the calendar grid for a month, whole weeks starting on Sunday."),
		mcp.WithString("month",
			mcp.Description("Month such as \"January 2025\" or 2025-01. Defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := strings.TrimSpace(request.GetString("month", ""))
		dto, err := svc.Month(ctx, month)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
