package plain

import (
	"context"
	"fmt"
)

const companyFields = `
  id
  name
  domainName
  tier {
    id
    name
    externalId
  }
  createdAt {
    iso8601
  }
  updatedAt {
    iso8601
  }
`

const companyQuery = `
query company($companyId: ID!) {
  company(companyId: $companyId) {` + companyFields + `}
}`

// Company fetches a company by id. Returns nil when it does not exist.
func (c *Client) Company(ctx context.Context, companyID string) (*Company, error) {
	var resp struct {
		Company *Company `json:"company"`
	}
	if err := c.run(ctx, companyQuery, map[string]interface{}{"companyId": companyID}, &resp); err != nil {
		return nil, err
	}
	return resp.Company, nil
}

const companiesQuery = `
query companies($first: Int!) {
  companies(first: $first) {
    edges {
      node {` + companyFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Companies lists companies, first page only.
func (c *Client) Companies(ctx context.Context, pageSize int) ([]Company, PageInfo, error) {
	var resp struct {
		Companies connection[Company] `json:"companies"`
	}
	if err := c.run(ctx, companiesQuery, map[string]interface{}{"first": pageSize}, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.Companies.nodes(), resp.Companies.PageInfo, nil
}

const searchCompaniesQuery = `
query searchCompanies($searchQuery: CompaniesSearchQuery!, $first: Int!) {
  searchCompanies(searchQuery: $searchQuery, first: $first) {
    edges {
      node {
        company {` + companyFields + `}
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// SearchCompanies searches companies by name or domain, first page only.
func (c *Client) SearchCompanies(ctx context.Context, term string, pageSize int) ([]Company, error) {
	var resp struct {
		SearchCompanies connection[struct {
			Company Company `json:"company"`
		}] `json:"searchCompanies"`
	}
	vars := map[string]interface{}{
		"searchQuery": map[string]interface{}{"term": term},
		"first":       pageSize,
	}
	if err := c.run(ctx, searchCompaniesQuery, vars, &resp); err != nil {
		return nil, err
	}
	hits := resp.SearchCompanies.nodes()
	companies := make([]Company, 0, len(hits))
	for _, h := range hits {
		companies = append(companies, h.Company)
	}
	return companies, nil
}

const upsertCompanyMutation = `
mutation upsertCompany($input: UpsertCompanyInput!) {
  upsertCompany(input: $input) {
    result
    company {` + companyFields + `}` + mutationErrorFields + `
  }
}`

// UpsertCompany creates or updates a company keyed by domain name.
func (c *Client) UpsertCompany(ctx context.Context, name, domainName string) (*Company, UpsertResult, error) {
	input := map[string]interface{}{
		"identifier": map[string]interface{}{"companyDomainName": domainName},
		"name":       name,
		"domainName": domainName,
	}
	var resp struct {
		UpsertCompany struct {
			Result  UpsertResult   `json:"result"`
			Company *Company       `json:"company"`
			Error   *MutationError `json:"error"`
		} `json:"upsertCompany"`
	}
	if err := c.run(ctx, upsertCompanyMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, "", err
	}
	if err := resp.UpsertCompany.Error.AsError(); err != nil {
		return nil, "", err
	}
	if resp.UpsertCompany.Company == nil {
		return nil, "", fmt.Errorf("upsertCompany: %w", ErrNoPayload)
	}
	return resp.UpsertCompany.Company, resp.UpsertCompany.Result, nil
}

const deleteCompanyMutation = `
mutation deleteCompany($input: DeleteCompanyInput!) {
  deleteCompany(input: $input) {` + mutationErrorFields + `
  }
}`

// DeleteCompany permanently deletes a company.
func (c *Client) DeleteCompany(ctx context.Context, companyID string) error {
	var resp struct {
		DeleteCompany struct {
			Error *MutationError `json:"error"`
		} `json:"deleteCompany"`
	}
	input := map[string]interface{}{"companyId": companyID}
	if err := c.run(ctx, deleteCompanyMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.DeleteCompany.Error.AsError()
}
