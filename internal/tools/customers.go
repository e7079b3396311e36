package tools

import (
	"context"
	"fmt"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCustomerTools() {
	s.mcp.AddTool(mcp.NewTool("get_customer_by_id",
		mcp.WithDescription("Get a customer by their ID."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	), s.handleGetCustomerByID)

	s.mcp.AddTool(mcp.NewTool("get_customer_by_email",
		mcp.WithDescription("Get a customer by their email address."),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The customer's email address"),
		),
	), s.handleGetCustomerByEmail)

	s.mcp.AddTool(mcp.NewTool("get_customer_by_external_id",
		mcp.WithDescription("Get a customer by the external ID assigned from your own system."),
		mcp.WithString("externalId",
			mcp.Required(),
			mcp.Description("The customer's external ID"),
		),
	), s.handleGetCustomerByExternalID)

	s.mcp.AddTool(mcp.NewTool("list_customers",
		mcp.WithDescription("List customers in the workspace."),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of customers to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListCustomers)

	s.mcp.AddTool(mcp.NewTool("upsert_customer",
		mcp.WithDescription("Create or update a customer keyed by email address. Plain decides create-vs-update by email match."),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The customer's email address"),
		),
		mcp.WithString("fullName",
			mcp.Description("The customer's full name"),
		),
		mcp.WithString("externalId",
			mcp.Description("External ID from your own system"),
		),
	), s.handleUpsertCustomer)

	s.mcp.AddTool(mcp.NewTool("delete_customer",
		mcp.WithDescription("Permanently delete a customer and all their threads. This cannot be undone."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	), s.handleDeleteCustomer)

	s.mcp.AddTool(mcp.NewTool("mark_customer_as_spam",
		mcp.WithDescription("Mark a customer as spam, hiding their threads from the inbox."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	), s.handleMarkCustomerAsSpam)

	s.mcp.AddTool(mcp.NewTool("unmark_customer_as_spam",
		mcp.WithDescription("Remove the spam marking from a customer."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	), s.handleUnmarkCustomerAsSpam)

	s.mcp.AddTool(mcp.NewTool("verify_customer_email",
		mcp.WithDescription("Mark a customer's email address as verified."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	), s.handleVerifyCustomerEmail)

	s.mcp.AddTool(mcp.NewTool("list_customer_groups",
		mcp.WithDescription("List the workspace's customer groups."),
	), s.handleListCustomerGroups)

	s.mcp.AddTool(mcp.NewTool("add_customer_to_groups",
		mcp.WithDescription("Add a customer to one or more customer groups."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("customerGroupIds",
			mcp.Required(),
			mcp.Description("Customer group IDs to add the customer to"),
			mcp.WithStringItems(),
		),
	), s.handleAddCustomerToGroups)

	s.mcp.AddTool(mcp.NewTool("remove_customer_from_groups",
		mcp.WithDescription("Remove a customer from one or more customer groups."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("customerGroupIds",
			mcp.Required(),
			mcp.Description("Customer group IDs to remove the customer from"),
			mcp.WithStringItems(),
		),
	), s.handleRemoveCustomerFromGroups)
}

// customerLookupHandler wraps the three lookup tools, which differ only in
// the argument name and client call.
func customerLookupHandler(argName, notFoundFmt string, lookup func(ctx context.Context, key string) (*plain.Customer, error)) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString(argName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		customer, err := lookup(ctx, key)
		if err != nil {
			return apiError(err), nil
		}
		if customer == nil {
			return mcp.NewToolResultText(fmt.Sprintf(notFoundFmt, key)), nil
		}
		return jsonResult(customerView(*customer))
	}
}

func (s *Server) handleGetCustomerByID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return customerLookupHandler("customerId", "No customer found with id %s.", s.client.Customer)(ctx, request)
}

func (s *Server) handleGetCustomerByEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return customerLookupHandler("email", "No customer found with email %s.", s.client.CustomerByEmail)(ctx, request)
}

func (s *Server) handleGetCustomerByExternalID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return customerLookupHandler("externalId", "No customer found with external id %s.", s.client.CustomerByExternalID)(ctx, request)
}

func (s *Server) handleListCustomers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	customers, page, err := s.client.Customers(ctx, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(customers) == 0 {
		return mcp.NewToolResultText("No customers in the workspace."), nil
	}
	views := make([]customerJSON, 0, len(customers))
	for _, c := range customers {
		views = append(views, customerView(c))
	}
	return pagedResult(views, page)
}

func (s *Server) handleUpsertCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in := plain.UpsertCustomerInput{
		Email:      email,
		FullName:   request.GetString("fullName", ""),
		ExternalID: request.GetString("externalId", ""),
	}
	customer, result, err := s.client.UpsertCustomer(ctx, in)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(struct {
		Result   plain.UpsertResult `json:"result"`
		Customer customerJSON       `json:"customer"`
	}{result, customerView(*customer)})
}

func (s *Server) handleDeleteCustomer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.DeleteCustomer(ctx, customerID); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Customer %s deleted.", customerID)), nil
}

// customerStatusHandler wraps the spam/verification mutations, which share
// their argument and result shape.
func (s *Server) customerStatusHandler(ctx context.Context, request mcp.CallToolRequest, call func(ctx context.Context, customerID string) (*plain.Customer, error)) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	customer, err := call(ctx, customerID)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(customerView(*customer))
}

func (s *Server) handleMarkCustomerAsSpam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.customerStatusHandler(ctx, request, s.client.MarkCustomerAsSpam)
}

func (s *Server) handleUnmarkCustomerAsSpam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.customerStatusHandler(ctx, request, s.client.UnmarkCustomerAsSpam)
}

func (s *Server) handleVerifyCustomerEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.customerStatusHandler(ctx, request, s.client.VerifyCustomerEmail)
}

func (s *Server) handleListCustomerGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groups, err := s.client.CustomerGroups(ctx)
	if err != nil {
		return apiError(err), nil
	}
	if len(groups) == 0 {
		return mcp.NewToolResultText("No customer groups in the workspace."), nil
	}
	return jsonResult(groups)
}

// groupMembershipHandler wraps the two group membership mutations.
func (s *Server) groupMembershipHandler(ctx context.Context, request mcp.CallToolRequest, verb string, call func(ctx context.Context, customerID string, groupIDs []string) error) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groupIDs, err := requireStringSliceArg(request, "customerGroupIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := call(ctx, customerID, groupIDs); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Customer %s %s %d group(s).", customerID, verb, len(groupIDs))), nil
}

func (s *Server) handleAddCustomerToGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.groupMembershipHandler(ctx, request, "added to", s.client.AddCustomerToGroups)
}

func (s *Server) handleRemoveCustomerFromGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.groupMembershipHandler(ctx, request, "removed from", s.client.RemoveCustomerFromGroups)
}
