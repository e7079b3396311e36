package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerEventTools() {
	s.mcp.AddTool(mcp.NewTool("create_thread_event",
		mcp.WithDescription("Record a custom event on a support thread's timeline, e.g. 'Refund issued' or 'Deployment completed'."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The event title"),
		),
		mcp.WithArray("components",
			mcp.Description("Optional lines of detail text shown under the title"),
			mcp.WithStringItems(),
		),
	), s.handleCreateThreadEvent)

	s.mcp.AddTool(mcp.NewTool("create_customer_event",
		mcp.WithDescription("Record a custom event on a customer's timeline, outside any particular thread."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The event title"),
		),
		mcp.WithArray("components",
			mcp.Description("Optional lines of detail text shown under the title"),
			mcp.WithStringItems(),
		),
	), s.handleCreateCustomerEvent)
}

func (s *Server) handleCreateThreadEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	components, err := stringSliceArg(request, "components")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := s.client.CreateThreadEvent(ctx, threadID, title, components)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(event)
}

func (s *Server) handleCreateCustomerEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	components, err := stringSliceArg(request, "components")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := s.client.CreateCustomerEvent(ctx, customerID, title, components)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(event)
}
