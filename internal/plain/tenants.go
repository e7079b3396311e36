package plain

import (
	"context"
	"fmt"
)

const tenantFields = `
  id
  externalId
  name
  createdAt {
    iso8601
  }
  updatedAt {
    iso8601
  }
`

const upsertTenantMutation = `
mutation upsertTenant($input: UpsertTenantInput!) {
  upsertTenant(input: $input) {
    result
    tenant {` + tenantFields + `}` + mutationErrorFields + `
  }
}`

// UpsertTenant creates or updates a tenant keyed by external id.
func (c *Client) UpsertTenant(ctx context.Context, externalID, name string) (*Tenant, UpsertResult, error) {
	input := map[string]interface{}{
		"identifier": map[string]interface{}{"externalId": externalID},
		"name":       name,
	}
	var resp struct {
		UpsertTenant struct {
			Result UpsertResult   `json:"result"`
			Tenant *Tenant        `json:"tenant"`
			Error  *MutationError `json:"error"`
		} `json:"upsertTenant"`
	}
	if err := c.run(ctx, upsertTenantMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, "", err
	}
	if err := resp.UpsertTenant.Error.AsError(); err != nil {
		return nil, "", err
	}
	if resp.UpsertTenant.Tenant == nil {
		return nil, "", fmt.Errorf("upsertTenant: %w", ErrNoPayload)
	}
	return resp.UpsertTenant.Tenant, resp.UpsertTenant.Result, nil
}

const tenantQuery = `
query tenant($identifier: TenantIdentifierInput!) {
  tenant(identifier: $identifier) {` + tenantFields + `}
}`

// Tenant fetches a tenant by external id. Returns nil when no tenant
// matches.
func (c *Client) Tenant(ctx context.Context, externalID string) (*Tenant, error) {
	var resp struct {
		Tenant *Tenant `json:"tenant"`
	}
	vars := map[string]interface{}{
		"identifier": map[string]interface{}{"externalId": externalID},
	}
	if err := c.run(ctx, tenantQuery, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Tenant, nil
}

const tenantsQuery = `
query tenants($first: Int!) {
  tenants(first: $first) {
    edges {
      node {` + tenantFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Tenants lists tenants, first page only.
func (c *Client) Tenants(ctx context.Context, pageSize int) ([]Tenant, PageInfo, error) {
	var resp struct {
		Tenants connection[Tenant] `json:"tenants"`
	}
	if err := c.run(ctx, tenantsQuery, map[string]interface{}{"first": pageSize}, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.Tenants.nodes(), resp.Tenants.PageInfo, nil
}

// tenantMembershipMutation covers the three customer/tenant membership
// mutations, which share their input and envelope shape.
func (c *Client) tenantMembershipMutation(ctx context.Context, field, query, customerID string, tenantExternalIDs []string) error {
	identifiers := make([]map[string]interface{}, 0, len(tenantExternalIDs))
	for _, id := range tenantExternalIDs {
		identifiers = append(identifiers, map[string]interface{}{"externalId": id})
	}
	input := map[string]interface{}{
		"customerIdentifier": map[string]interface{}{"customerId": customerID},
		"tenantIdentifiers":  identifiers,
	}

	resp := map[string]struct {
		Error *MutationError `json:"error"`
	}{}
	if err := c.run(ctx, query, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp[field].Error.AsError()
}

const setCustomerTenantsMutation = `
mutation setCustomerTenants($input: SetCustomerTenantsInput!) {
  setCustomerTenants(input: $input) {` + mutationErrorFields + `
  }
}`

// SetCustomerTenants replaces a customer's tenant memberships.
func (c *Client) SetCustomerTenants(ctx context.Context, customerID string, tenantExternalIDs []string) error {
	return c.tenantMembershipMutation(ctx, "setCustomerTenants", setCustomerTenantsMutation, customerID, tenantExternalIDs)
}

const addCustomerToTenantsMutation = `
mutation addCustomerToTenants($input: AddCustomerToTenantsInput!) {
  addCustomerToTenants(input: $input) {` + mutationErrorFields + `
  }
}`

// AddCustomerToTenants adds tenant memberships to a customer.
func (c *Client) AddCustomerToTenants(ctx context.Context, customerID string, tenantExternalIDs []string) error {
	return c.tenantMembershipMutation(ctx, "addCustomerToTenants", addCustomerToTenantsMutation, customerID, tenantExternalIDs)
}

const removeCustomerFromTenantsMutation = `
mutation removeCustomerFromTenants($input: RemoveCustomerFromTenantsInput!) {
  removeCustomerFromTenants(input: $input) {` + mutationErrorFields + `
  }
}`

// RemoveCustomerFromTenants removes tenant memberships from a customer.
func (c *Client) RemoveCustomerFromTenants(ctx context.Context, customerID string, tenantExternalIDs []string) error {
	return c.tenantMembershipMutation(ctx, "removeCustomerFromTenants", removeCustomerFromTenantsMutation, customerID, tenantExternalIDs)
}
