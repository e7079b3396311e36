package plain

import "context"

const tierFields = `
  id
  name
  externalId
`

const tiersQuery = `
query tiers($first: Int!) {
  tiers(first: $first) {
    edges {
      node {` + tierFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Tiers lists the workspace's tiers, first page only.
func (c *Client) Tiers(ctx context.Context, pageSize int) ([]Tier, PageInfo, error) {
	var resp struct {
		Tiers connection[Tier] `json:"tiers"`
	}
	if err := c.run(ctx, tiersQuery, map[string]interface{}{"first": pageSize}, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.Tiers.nodes(), resp.Tiers.PageInfo, nil
}

const tierQuery = `
query tier($tierId: ID!) {
  tier(tierId: $tierId) {` + tierFields + `}
}`

// Tier fetches a tier by id. Returns nil when it does not exist.
func (c *Client) Tier(ctx context.Context, tierID string) (*Tier, error) {
	var resp struct {
		Tier *Tier `json:"tier"`
	}
	if err := c.run(ctx, tierQuery, map[string]interface{}{"tierId": tierID}, &resp); err != nil {
		return nil, err
	}
	return resp.Tier, nil
}

const updateCompanyTierMutation = `
mutation updateCompanyTier($input: UpdateCompanyTierInput!) {
  updateCompanyTier(input: $input) {` + mutationErrorFields + `
  }
}`

// SetTierForCompany assigns a tier to a company, both by id.
func (c *Client) SetTierForCompany(ctx context.Context, tierID, companyID string) error {
	var resp struct {
		UpdateCompanyTier struct {
			Error *MutationError `json:"error"`
		} `json:"updateCompanyTier"`
	}
	input := map[string]interface{}{
		"companyIdentifier": map[string]interface{}{"companyId": companyID},
		"tierIdentifier":    map[string]interface{}{"tierId": tierID},
	}
	if err := c.run(ctx, updateCompanyTierMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.UpdateCompanyTier.Error.AsError()
}

const updateTenantTierMutation = `
mutation updateTenantTier($input: UpdateTenantTierInput!) {
  updateTenantTier(input: $input) {` + mutationErrorFields + `
  }
}`

// SetTierForTenant assigns a tier to a tenant identified by external id.
func (c *Client) SetTierForTenant(ctx context.Context, tierID, tenantExternalID string) error {
	var resp struct {
		UpdateTenantTier struct {
			Error *MutationError `json:"error"`
		} `json:"updateTenantTier"`
	}
	input := map[string]interface{}{
		"tenantIdentifier": map[string]interface{}{"externalId": tenantExternalID},
		"tierIdentifier":   map[string]interface{}{"tierId": tierID},
	}
	if err := c.run(ctx, updateTenantTierMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.UpdateTenantTier.Error.AsError()
}
