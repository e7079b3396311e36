package plain

import (
	"context"
	"fmt"
)

const labelTypeFields = `
  id
  name
  icon
  isArchived
`

const labelTypesQuery = `
query labelTypes($first: Int!, $filters: LabelTypeFilter) {
  labelTypes(first: $first, filters: $filters) {
    edges {
      node {` + labelTypeFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// LabelTypes lists the workspace's label types, first page only. Archived
// label types are excluded unless includeArchived is set.
func (c *Client) LabelTypes(ctx context.Context, pageSize int, includeArchived bool) ([]LabelType, PageInfo, error) {
	vars := map[string]interface{}{"first": pageSize}
	if !includeArchived {
		vars["filters"] = map[string]interface{}{"isArchived": false}
	}
	var resp struct {
		LabelTypes connection[LabelType] `json:"labelTypes"`
	}
	if err := c.run(ctx, labelTypesQuery, vars, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.LabelTypes.nodes(), resp.LabelTypes.PageInfo, nil
}

// labelTypeMutation covers the mutations returning a labelType-or-error
// envelope under a single top-level field.
func (c *Client) labelTypeMutation(ctx context.Context, field, query string, input map[string]interface{}) (*LabelType, error) {
	resp := map[string]struct {
		LabelType *LabelType     `json:"labelType"`
		Error     *MutationError `json:"error"`
	}{}
	if err := c.run(ctx, query, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	payload := resp[field]
	if err := payload.Error.AsError(); err != nil {
		return nil, err
	}
	if payload.LabelType == nil {
		return nil, fmt.Errorf("%s: %w", field, ErrNoPayload)
	}
	return payload.LabelType, nil
}

const createLabelTypeMutation = `
mutation createLabelType($input: CreateLabelTypeInput!) {
  createLabelType(input: $input) {
    labelType {` + labelTypeFields + `}` + mutationErrorFields + `
  }
}`

// CreateLabelType creates a new label type. icon may be empty.
func (c *Client) CreateLabelType(ctx context.Context, name, icon string) (*LabelType, error) {
	input := map[string]interface{}{"name": name}
	if icon != "" {
		input["icon"] = icon
	}
	return c.labelTypeMutation(ctx, "createLabelType", createLabelTypeMutation, input)
}

const updateLabelTypeMutation = `
mutation updateLabelType($input: UpdateLabelTypeInput!) {
  updateLabelType(input: $input) {
    labelType {` + labelTypeFields + `}` + mutationErrorFields + `
  }
}`

// UpdateLabelType renames a label type and/or changes its icon. Empty
// arguments leave the corresponding field unchanged.
func (c *Client) UpdateLabelType(ctx context.Context, labelTypeID, name, icon string) (*LabelType, error) {
	input := map[string]interface{}{"labelTypeId": labelTypeID}
	if name != "" {
		input["name"] = name
	}
	if icon != "" {
		input["icon"] = icon
	}
	return c.labelTypeMutation(ctx, "updateLabelType", updateLabelTypeMutation, input)
}

const archiveLabelTypeMutation = `
mutation archiveLabelType($input: ArchiveLabelTypeInput!) {
  archiveLabelType(input: $input) {
    labelType {` + labelTypeFields + `}` + mutationErrorFields + `
  }
}`

// ArchiveLabelType archives a label type so it can no longer be applied.
func (c *Client) ArchiveLabelType(ctx context.Context, labelTypeID string) (*LabelType, error) {
	return c.labelTypeMutation(ctx, "archiveLabelType", archiveLabelTypeMutation, map[string]interface{}{
		"labelTypeId": labelTypeID,
	})
}
