package plain

import (
	"context"
	"fmt"
)

const customerFields = `
  id
  fullName
  shortName
  externalId
  email {
    email
    isVerified
  }
  company {
    id
    name
    domainName
  }
  createdAt {
    iso8601
  }
  updatedAt {
    iso8601
  }
`

const customerQuery = `
query customer($customerId: ID!) {
  customer(customerId: $customerId) {` + customerFields + `}
}`

// Customer fetches a customer by id. Returns nil when the customer does
// not exist.
func (c *Client) Customer(ctx context.Context, customerID string) (*Customer, error) {
	var resp struct {
		Customer *Customer `json:"customer"`
	}
	if err := c.run(ctx, customerQuery, map[string]interface{}{"customerId": customerID}, &resp); err != nil {
		return nil, err
	}
	return resp.Customer, nil
}

const customerByEmailQuery = `
query customerByEmail($email: String!) {
  customerByEmail(email: $email) {` + customerFields + `}
}`

// CustomerByEmail fetches a customer by email address. Returns nil when no
// customer matches.
func (c *Client) CustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var resp struct {
		Customer *Customer `json:"customerByEmail"`
	}
	if err := c.run(ctx, customerByEmailQuery, map[string]interface{}{"email": email}, &resp); err != nil {
		return nil, err
	}
	return resp.Customer, nil
}

const customerByExternalIDQuery = `
query customerByExternalId($externalId: ID!) {
  customerByExternalId(externalId: $externalId) {` + customerFields + `}
}`

// CustomerByExternalID fetches a customer by the caller-owned external id.
// Returns nil when no customer matches.
func (c *Client) CustomerByExternalID(ctx context.Context, externalID string) (*Customer, error) {
	var resp struct {
		Customer *Customer `json:"customerByExternalId"`
	}
	if err := c.run(ctx, customerByExternalIDQuery, map[string]interface{}{"externalId": externalID}, &resp); err != nil {
		return nil, err
	}
	return resp.Customer, nil
}

const customersQuery = `
query customers($first: Int!) {
  customers(first: $first) {
    edges {
      node {` + customerFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Customers lists customers, first page only.
func (c *Client) Customers(ctx context.Context, pageSize int) ([]Customer, PageInfo, error) {
	var resp struct {
		Customers connection[Customer] `json:"customers"`
	}
	if err := c.run(ctx, customersQuery, map[string]interface{}{"first": pageSize}, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.Customers.nodes(), resp.Customers.PageInfo, nil
}

// UpsertCustomerInput carries the arguments for UpsertCustomer. Email is
// the identity the remote system matches on.
type UpsertCustomerInput struct {
	Email      string
	FullName   string
	ExternalID string
}

const upsertCustomerMutation = `
mutation upsertCustomer($input: UpsertCustomerInput!) {
  upsertCustomer(input: $input) {
    result
    customer {` + customerFields + `}` + mutationErrorFields + `
  }
}`

// UpsertCustomer creates or updates a customer keyed by email. The remote
// system decides create-vs-update; the result discriminator reports which
// happened.
func (c *Client) UpsertCustomer(ctx context.Context, in UpsertCustomerInput) (*Customer, UpsertResult, error) {
	onCreateUpdate := map[string]interface{}{
		"email": map[string]interface{}{
			"email":      in.Email,
			"isVerified": false,
		},
	}
	if in.FullName != "" {
		onCreateUpdate["fullName"] = in.FullName
	}
	if in.ExternalID != "" {
		onCreateUpdate["externalId"] = in.ExternalID
	}
	input := map[string]interface{}{
		"identifier": map[string]interface{}{"emailAddress": in.Email},
		"onCreate":   onCreateUpdate,
		"onUpdate":   onCreateUpdate,
	}

	var resp struct {
		UpsertCustomer struct {
			Result   UpsertResult   `json:"result"`
			Customer *Customer      `json:"customer"`
			Error    *MutationError `json:"error"`
		} `json:"upsertCustomer"`
	}
	if err := c.run(ctx, upsertCustomerMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, "", err
	}
	if err := resp.UpsertCustomer.Error.AsError(); err != nil {
		return nil, "", err
	}
	if resp.UpsertCustomer.Customer == nil {
		return nil, "", fmt.Errorf("upsertCustomer: %w", ErrNoPayload)
	}
	return resp.UpsertCustomer.Customer, resp.UpsertCustomer.Result, nil
}

// customerStatusMutation covers the mutations that take a customerId and
// return a customer-or-error envelope under a single top-level field.
func (c *Client) customerStatusMutation(ctx context.Context, field, query, customerID string) (*Customer, error) {
	resp := map[string]struct {
		Customer *Customer      `json:"customer"`
		Error    *MutationError `json:"error"`
	}{}
	input := map[string]interface{}{"customerId": customerID}
	if err := c.run(ctx, query, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	payload := resp[field]
	if err := payload.Error.AsError(); err != nil {
		return nil, err
	}
	if payload.Customer == nil {
		return nil, fmt.Errorf("%s: %w", field, ErrNoPayload)
	}
	return payload.Customer, nil
}

const deleteCustomerMutation = `
mutation deleteCustomer($input: DeleteCustomerInput!) {
  deleteCustomer(input: $input) {` + mutationErrorFields + `
  }
}`

// DeleteCustomer permanently deletes a customer and their threads.
func (c *Client) DeleteCustomer(ctx context.Context, customerID string) error {
	var resp struct {
		DeleteCustomer struct {
			Error *MutationError `json:"error"`
		} `json:"deleteCustomer"`
	}
	input := map[string]interface{}{"customerId": customerID}
	if err := c.run(ctx, deleteCustomerMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.DeleteCustomer.Error.AsError()
}

const markCustomerAsSpamMutation = `
mutation markCustomerAsSpam($input: MarkCustomerAsSpamInput!) {
  markCustomerAsSpam(input: $input) {
    customer {` + customerFields + `}` + mutationErrorFields + `
  }
}`

// MarkCustomerAsSpam marks a customer as spam, hiding their threads.
func (c *Client) MarkCustomerAsSpam(ctx context.Context, customerID string) (*Customer, error) {
	return c.customerStatusMutation(ctx, "markCustomerAsSpam", markCustomerAsSpamMutation, customerID)
}

const unmarkCustomerAsSpamMutation = `
mutation unmarkCustomerAsSpam($input: UnmarkCustomerAsSpamInput!) {
  unmarkCustomerAsSpam(input: $input) {
    customer {` + customerFields + `}` + mutationErrorFields + `
  }
}`

// UnmarkCustomerAsSpam reverses MarkCustomerAsSpam.
func (c *Client) UnmarkCustomerAsSpam(ctx context.Context, customerID string) (*Customer, error) {
	return c.customerStatusMutation(ctx, "unmarkCustomerAsSpam", unmarkCustomerAsSpamMutation, customerID)
}

const verifyCustomerEmailMutation = `
mutation verifyCustomerEmail($input: VerifyCustomerEmailInput!) {
  verifyCustomerEmail(input: $input) {
    customer {` + customerFields + `}` + mutationErrorFields + `
  }
}`

// VerifyCustomerEmail marks a customer's email address as verified.
func (c *Client) VerifyCustomerEmail(ctx context.Context, customerID string) (*Customer, error) {
	return c.customerStatusMutation(ctx, "verifyCustomerEmail", verifyCustomerEmailMutation, customerID)
}

const customerGroupsQuery = `
query customerGroups {
  customerGroups(first: 100) {
    edges {
      node {
        id
        name
        key
      }
    }
  }
}`

// CustomerGroups lists the workspace's customer groups.
func (c *Client) CustomerGroups(ctx context.Context) ([]CustomerGroup, error) {
	var resp struct {
		CustomerGroups connection[CustomerGroup] `json:"customerGroups"`
	}
	if err := c.run(ctx, customerGroupsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.CustomerGroups.nodes(), nil
}

const addCustomerToGroupsMutation = `
mutation addCustomerToCustomerGroups($input: AddCustomerToCustomerGroupsInput!) {
  addCustomerToCustomerGroups(input: $input) {` + mutationErrorFields + `
  }
}`

// AddCustomerToGroups adds a customer to the given customer groups.
func (c *Client) AddCustomerToGroups(ctx context.Context, customerID string, groupIDs []string) error {
	var resp struct {
		AddCustomerToCustomerGroups struct {
			Error *MutationError `json:"error"`
		} `json:"addCustomerToCustomerGroups"`
	}
	input := map[string]interface{}{
		"customerId":       customerID,
		"customerGroupIds": groupIDs,
	}
	if err := c.run(ctx, addCustomerToGroupsMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.AddCustomerToCustomerGroups.Error.AsError()
}

const removeCustomerFromGroupsMutation = `
mutation removeCustomerFromCustomerGroups($input: RemoveCustomerFromCustomerGroupsInput!) {
  removeCustomerFromCustomerGroups(input: $input) {` + mutationErrorFields + `
  }
}`

// RemoveCustomerFromGroups removes a customer from the given customer
// groups.
func (c *Client) RemoveCustomerFromGroups(ctx context.Context, customerID string, groupIDs []string) error {
	var resp struct {
		RemoveCustomerFromCustomerGroups struct {
			Error *MutationError `json:"error"`
		} `json:"removeCustomerFromCustomerGroups"`
	}
	input := map[string]interface{}{
		"customerId":       customerID,
		"customerGroupIds": groupIDs,
	}
	if err := c.run(ctx, removeCustomerFromGroupsMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.RemoveCustomerFromCustomerGroups.Error.AsError()
}
