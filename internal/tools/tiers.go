package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTierTools() {
	s.mcp.AddTool(mcp.NewTool("list_tiers",
		mcp.WithDescription("List the workspace's support tiers."),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of tiers to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListTiers)

	s.mcp.AddTool(mcp.NewTool("get_tier",
		mcp.WithDescription("Get a support tier by its ID."),
		mcp.WithString("tierId",
			mcp.Required(),
			mcp.Description("The tier ID"),
		),
	), s.handleGetTier)

	s.mcp.AddTool(mcp.NewTool("set_tier_for_company",
		mcp.WithDescription("Assign a support tier to a company."),
		mcp.WithString("tierIdentifier",
			mcp.Required(),
			mcp.Description("The tier ID"),
		),
		mcp.WithString("companyIdentifier",
			mcp.Required(),
			mcp.Description("The company ID"),
		),
	), s.handleSetTierForCompany)

	s.mcp.AddTool(mcp.NewTool("set_tier_for_tenant",
		mcp.WithDescription("Assign a support tier to a tenant."),
		mcp.WithString("tierIdentifier",
			mcp.Required(),
			mcp.Description("The tier ID"),
		),
		mcp.WithString("tenantIdentifier",
			mcp.Required(),
			mcp.Description("The tenant's external ID"),
		),
	), s.handleSetTierForTenant)
}

func (s *Server) handleListTiers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tiers, page, err := s.client.Tiers(ctx, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(tiers) == 0 {
		return mcp.NewToolResultText("No tiers in the workspace."), nil
	}
	return pagedResult(tiers, page)
}

func (s *Server) handleGetTier(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tierID, err := request.RequireString("tierId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tier, err := s.client.Tier(ctx, tierID)
	if err != nil {
		return apiError(err), nil
	}
	if tier == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No tier found with id %s.", tierID)), nil
	}
	return jsonResult(tier)
}

func (s *Server) handleSetTierForCompany(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tierID, err := request.RequireString("tierIdentifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	companyID, err := request.RequireString("companyIdentifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.SetTierForCompany(ctx, tierID, companyID); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Company %s assigned to tier %s.", companyID, tierID)), nil
}

func (s *Server) handleSetTierForTenant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tierID, err := request.RequireString("tierIdentifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tenantIdentifier, err := request.RequireString("tenantIdentifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.SetTierForTenant(ctx, tierID, tenantIdentifier); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tenant %s assigned to tier %s.", tenantIdentifier, tierID)), nil
}
