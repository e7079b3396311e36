package tools

import (
	"context"
	"fmt"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTimelineTools() {
	s.mcp.AddTool(mcp.NewTool("get_thread_timeline",
		mcp.WithDescription(fmt.Sprintf(
			"Reconstruct the timeline of a support thread: who said or did what, in order. "+
				"Reads the most recent %d entries of the customer's activity feed; thread activity beyond that window is not returned.",
			plain.TimelinePageSize)),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("ID of the customer the thread belongs to"),
		),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID to reconstruct"),
		),
	), s.handleGetThreadTimeline)
}

func (s *Server) handleGetThreadTimeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.client.ThreadTimeline(ctx, customerID, threadID)
	if err != nil {
		return apiError(err), nil
	}
	if entries == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No customer found with id %s.", customerID)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No timeline entries found for thread %s in the customer's recent activity.", threadID)), nil
	}
	return jsonResult(entries)
}
