package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerLabelTools() {
	s.mcp.AddTool(mcp.NewTool("list_label_types",
		mcp.WithDescription("List the workspace's label types."),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of label types to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
		mcp.WithBoolean("includeArchived",
			mcp.Description("Include archived label types (default: false)"),
		),
	), s.handleListLabelTypes)

	s.mcp.AddTool(mcp.NewTool("create_label_type",
		mcp.WithDescription("Create a new label type."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The label type name"),
		),
		mcp.WithString("icon",
			mcp.Description("Optional icon name"),
		),
	), s.handleCreateLabelType)

	s.mcp.AddTool(mcp.NewTool("update_label_type",
		mcp.WithDescription("Rename a label type or change its icon."),
		mcp.WithString("labelTypeId",
			mcp.Required(),
			mcp.Description("The label type ID"),
		),
		mcp.WithString("name",
			mcp.Description("New name; omit to keep the current one"),
		),
		mcp.WithString("icon",
			mcp.Description("New icon; omit to keep the current one"),
		),
	), s.handleUpdateLabelType)

	s.mcp.AddTool(mcp.NewTool("archive_label_type",
		mcp.WithDescription("Archive a label type so it can no longer be applied to threads."),
		mcp.WithString("labelTypeId",
			mcp.Required(),
			mcp.Description("The label type ID"),
		),
	), s.handleArchiveLabelType)
}

func (s *Server) handleListLabelTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	includeArchived := request.GetBool("includeArchived", false)

	labelTypes, page, err := s.client.LabelTypes(ctx, pageSize, includeArchived)
	if err != nil {
		return apiError(err), nil
	}
	if len(labelTypes) == 0 {
		return mcp.NewToolResultText("No label types in the workspace."), nil
	}
	return pagedResult(labelTypes, page)
}

func (s *Server) handleCreateLabelType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	icon := request.GetString("icon", "")

	labelType, err := s.client.CreateLabelType(ctx, name, icon)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(labelType)
}

func (s *Server) handleUpdateLabelType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	labelTypeID, err := request.RequireString("labelTypeId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name := request.GetString("name", "")
	icon := request.GetString("icon", "")
	if name == "" && icon == "" {
		return mcp.NewToolResultError("at least one of name or icon must be provided"), nil
	}

	labelType, err := s.client.UpdateLabelType(ctx, labelTypeID, name, icon)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(labelType)
}

func (s *Server) handleArchiveLabelType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	labelTypeID, err := request.RequireString("labelTypeId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelType, err := s.client.ArchiveLabelType(ctx, labelTypeID)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(labelType)
}
