package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/crewlens/crewlens/lib/model"
	"github.com/crewlens/crewlens/lib/reports"
)

// NewMCPServer builds the MCP server with the five query tools registered.
func (s *Server) NewMCPServer() *mcpserver.MCPServer {
	m := mcpserver.NewMCPServer(
		"crewlens",
		Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	m.AddTool(mcp.NewTool("get_team_utilization",
		mcp.WithDescription("Billable utilization over a trailing window of working days, "+
			"with per-team and per-person breakdowns."),
		mcp.WithString("teamFilter",
			mcp.Description("Case-insensitive substring filter on team names.")),
		mcp.WithNumber("dateRangeDays",
			mcp.Description("Length of the window in working days."),
			mcp.DefaultNumber(reports.DefaultDateRangeDays)),
	), s.handleTeamUtilization)

	m.AddTool(mcp.NewTool("get_project_overview",
		mcp.WithDescription("Projects with client, team, staffing and budget vs actual effort."),
		mcp.WithString("status",
			mcp.Description("Project status to include."),
			mcp.Enum("active", "tentative", "archived", "all")),
	), s.handleProjectOverview)

	m.AddTool(mcp.NewTool("get_capacity_forecast",
		mcp.WithDescription("Per-person availability over the coming weeks: active assignments, "+
			"assignments ending soon, upcoming leave and a weekly outlook."),
		mcp.WithNumber("weeksAhead",
			mcp.Description("Forecast horizon in weeks."),
			mcp.DefaultNumber(reports.DefaultForecastWeeks)),
	), s.handleCapacityForecast)

	m.AddTool(mcp.NewTool("get_person_details",
		mcp.WithDescription("One person with team, role, skills and assignments."),
		mcp.WithNumber("personId",
			mcp.Description("ID of the person."),
			mcp.Required()),
	), s.handlePersonDetails)

	m.AddTool(mcp.NewTool("search_resources",
		mcp.WithDescription("Case-insensitive name search across people, projects and clients."),
		mcp.WithString("query",
			mcp.Description("Substring to search for."),
			mcp.Required()),
		mcp.WithString("resourceType",
			mcp.Description("Which resource types to search."),
			mcp.Enum("people", "projects", "clients", "all")),
	), s.handleSearch)

	return m
}

// ServeStdio runs the MCP server over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.NewMCPServer())
}

// ServeSSE runs the MCP server over HTTP with SSE transport.
func (s *Server) ServeSSE(addr string) error {
	sse := mcpserver.NewSSEServer(s.NewMCPServer(),
		mcpserver.WithBaseURL(fmt.Sprintf("http://%v", addr)))
	return sse.Start(addr)
}

func (s *Server) handleTeamUtilization(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.TeamUtilization(ctx, argString(req, "teamFilter"), argInt(req, "dateRangeDays"))
	if err != nil {
		return toolError("get_team_utilization", err), nil
	}

	return toolJSON(result)
}

func (s *Server) handleProjectOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.ProjectOverview(ctx, argString(req, "status"))
	if err != nil {
		return toolError("get_project_overview", err), nil
	}

	return toolJSON(result)
}

func (s *Server) handleCapacityForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.CapacityForecast(ctx, argInt(req, "weeksAhead"))
	if err != nil {
		return toolError("get_capacity_forecast", err), nil
	}

	return toolJSON(result)
}

func (s *Server) handlePersonDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := argID(req, "personId")
	if !ok {
		return mcp.NewToolResultError("get_person_details failed: personId is required"), nil
	}

	result, err := s.PersonDetails(ctx, id)
	if err != nil {
		return toolError("get_person_details", err), nil
	}

	return toolJSON(result)
}

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.Search(ctx, argString(req, "query"), argString(req, "resourceType"))
	if err != nil {
		return toolError("search_resources", err), nil
	}

	return toolJSON(result)
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(string(body)), nil
}

func toolError(operation string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%v failed: %v", operation, err))
}

func argString(req mcp.CallToolRequest, key string) string {
	v, _ := req.Params.Arguments[key].(string)
	return v
}

func argInt(req mcp.CallToolRequest, key string) int {
	v, _ := req.Params.Arguments[key].(float64)
	return int(v)
}

func argID(req mcp.CallToolRequest, key string) (model.ID, bool) {
	switch v := req.Params.Arguments[key].(type) {
	case float64:
		return model.ID(v), true
	case string:
		id, err := model.StringToID(v)
		return id, err == nil
	default:
		return 0, false
	}
}
