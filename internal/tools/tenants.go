package tools

import (
	"context"
	"fmt"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTenantTools() {
	s.mcp.AddTool(mcp.NewTool("upsert_tenant",
		mcp.WithDescription("Create or update a tenant keyed by external ID. Plain decides create-vs-update by external ID match."),
		mcp.WithString("externalId",
			mcp.Required(),
			mcp.Description("The tenant's external ID from your own system"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The tenant's display name"),
		),
	), s.handleUpsertTenant)

	s.mcp.AddTool(mcp.NewTool("get_tenant",
		mcp.WithDescription("Get a tenant by its external ID."),
		mcp.WithString("tenantIdentifier",
			mcp.Required(),
			mcp.Description("The tenant's external ID"),
		),
	), s.handleGetTenant)

	s.mcp.AddTool(mcp.NewTool("list_tenants",
		mcp.WithDescription("List tenants in the workspace."),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of tenants to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListTenants)

	s.mcp.AddTool(mcp.NewTool("set_customer_tenants",
		mcp.WithDescription("Replace a customer's tenant memberships with the given set."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("tenantIdentifiers",
			mcp.Required(),
			mcp.Description("Tenant external IDs"),
			mcp.WithStringItems(),
		),
	), s.handleSetCustomerTenants)

	s.mcp.AddTool(mcp.NewTool("add_customer_to_tenants",
		mcp.WithDescription("Add a customer to one or more tenants."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("tenantIdentifiers",
			mcp.Required(),
			mcp.Description("Tenant external IDs"),
			mcp.WithStringItems(),
		),
	), s.handleAddCustomerToTenants)

	s.mcp.AddTool(mcp.NewTool("remove_customer_from_tenants",
		mcp.WithDescription("Remove a customer from one or more tenants."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("tenantIdentifiers",
			mcp.Required(),
			mcp.Description("Tenant external IDs"),
			mcp.WithStringItems(),
		),
	), s.handleRemoveCustomerFromTenants)
}

func (s *Server) handleUpsertTenant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	externalID, err := request.RequireString("externalId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tenant, result, err := s.client.UpsertTenant(ctx, externalID, name)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(struct {
		Result plain.UpsertResult `json:"result"`
		Tenant tenantJSON         `json:"tenant"`
	}{result, tenantView(*tenant)})
}

func (s *Server) handleGetTenant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier, err := request.RequireString("tenantIdentifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tenant, err := s.client.Tenant(ctx, identifier)
	if err != nil {
		return apiError(err), nil
	}
	if tenant == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No tenant found with external id %s.", identifier)), nil
	}
	return jsonResult(tenantView(*tenant))
}

func (s *Server) handleListTenants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tenants, page, err := s.client.Tenants(ctx, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(tenants) == 0 {
		return mcp.NewToolResultText("No tenants in the workspace."), nil
	}
	views := make([]tenantJSON, 0, len(tenants))
	for _, t := range tenants {
		views = append(views, tenantView(t))
	}
	return pagedResult(views, page)
}

// tenantMembershipHandler wraps the three tenant membership mutations.
func (s *Server) tenantMembershipHandler(ctx context.Context, request mcp.CallToolRequest, doneFmt string, call func(ctx context.Context, customerID string, tenantExternalIDs []string) error) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	identifiers, err := requireStringSliceArg(request, "tenantIdentifiers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := call(ctx, customerID, identifiers); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(doneFmt, customerID, len(identifiers))), nil
}

func (s *Server) handleSetCustomerTenants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.tenantMembershipHandler(ctx, request, "Customer %s now belongs to exactly %d tenant(s).", s.client.SetCustomerTenants)
}

func (s *Server) handleAddCustomerToTenants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.tenantMembershipHandler(ctx, request, "Customer %s added to %d tenant(s).", s.client.AddCustomerToTenants)
}

func (s *Server) handleRemoveCustomerFromTenants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.tenantMembershipHandler(ctx, request, "Customer %s removed from %d tenant(s).", s.client.RemoveCustomerFromTenants)
}
