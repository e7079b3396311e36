package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerUserTools() {
	s.mcp.AddTool(mcp.NewTool("list_users",
		mcp.WithDescription("List the workspace's users (support staff)."),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of users to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListUsers)

	s.mcp.AddTool(mcp.NewTool("get_user_by_email",
		mcp.WithDescription("Get a workspace user by email. Useful for finding a user ID to assign threads to."),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The user's email address"),
		),
	), s.handleGetUserByEmail)

	s.mcp.AddTool(mcp.NewTool("get_workspace",
		mcp.WithDescription("Get the workspace the configured API key belongs to."),
	), s.handleGetWorkspace)
}

func (s *Server) handleListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	users, page, err := s.client.Users(ctx, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(users) == 0 {
		return mcp.NewToolResultText("No users in the workspace."), nil
	}
	return pagedResult(users, page)
}

func (s *Server) handleGetUserByEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	user, err := s.client.UserByEmail(ctx, email)
	if err != nil {
		return apiError(err), nil
	}
	if user == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No user found with email %s.", email)), nil
	}
	return jsonResult(user)
}

func (s *Server) handleGetWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workspace, err := s.client.MyWorkspace(ctx)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(workspace)
}
