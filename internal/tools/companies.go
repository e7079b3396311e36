package tools

import (
	"context"
	"fmt"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCompanyTools() {
	s.mcp.AddTool(mcp.NewTool("get_company",
		mcp.WithDescription("Get a company by its ID."),
		mcp.WithString("companyId",
			mcp.Required(),
			mcp.Description("The company ID"),
		),
	), s.handleGetCompany)

	s.mcp.AddTool(mcp.NewTool("list_companies",
		mcp.WithDescription("List companies in the workspace."),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of companies to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListCompanies)

	s.mcp.AddTool(mcp.NewTool("search_companies",
		mcp.WithDescription("Search companies by name or domain."),
		mcp.WithString("searchQuery",
			mcp.Required(),
			mcp.Description("The search term"),
		),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of results, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleSearchCompanies)

	s.mcp.AddTool(mcp.NewTool("upsert_company",
		mcp.WithDescription("Create or update a company keyed by domain name. Plain decides create-vs-update by domain match."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The company name"),
		),
		mcp.WithString("domainName",
			mcp.Required(),
			mcp.Description("The company's email domain, e.g. example.com"),
		),
	), s.handleUpsertCompany)

	s.mcp.AddTool(mcp.NewTool("delete_company",
		mcp.WithDescription("Permanently delete a company. This cannot be undone."),
		mcp.WithString("companyId",
			mcp.Required(),
			mcp.Description("The company ID"),
		),
	), s.handleDeleteCompany)
}

func (s *Server) handleGetCompany(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := request.RequireString("companyId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	company, err := s.client.Company(ctx, companyID)
	if err != nil {
		return apiError(err), nil
	}
	if company == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No company found with id %s.", companyID)), nil
	}
	return jsonResult(companyView(*company))
}

func (s *Server) handleListCompanies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	companies, page, err := s.client.Companies(ctx, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(companies) == 0 {
		return mcp.NewToolResultText("No companies in the workspace."), nil
	}
	views := make([]companyJSON, 0, len(companies))
	for _, c := range companies {
		views = append(views, companyView(c))
	}
	return pagedResult(views, page)
}

func (s *Server) handleSearchCompanies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("searchQuery")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	companies, err := s.client.SearchCompanies(ctx, term, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(companies) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No companies matched %q.", term)), nil
	}
	views := make([]companyJSON, 0, len(companies))
	for _, c := range companies {
		views = append(views, companyView(c))
	}
	return jsonResult(views)
}

func (s *Server) handleUpsertCompany(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	domainName, err := request.RequireString("domainName")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	company, result, err := s.client.UpsertCompany(ctx, name, domainName)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(struct {
		Result  plain.UpsertResult `json:"result"`
		Company companyJSON        `json:"company"`
	}{result, companyView(*company)})
}

func (s *Server) handleDeleteCompany(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := request.RequireString("companyId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.DeleteCompany(ctx, companyID); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Company %s deleted.", companyID)), nil
}
