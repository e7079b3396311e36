package plain

import (
	"context"
	"fmt"
)

// threadFields is the selection set shared by every thread query and
// mutation payload.
const threadFields = `
  id
  externalId
  title
  status
  priority
  previewText
  customer {
    id
    fullName
    email {
      email
    }
  }
  assignedTo {
    ... on User {
      id
      fullName
      email
    }
  }
  labels {
    id
    labelType {
      id
      name
      icon
      isArchived
    }
  }
  createdAt {
    iso8601
  }
  updatedAt {
    iso8601
  }
`

const threadQuery = `
query thread($threadId: ID!) {
  thread(threadId: $threadId) {` + threadFields + `}
}`

// Thread fetches a single thread by id. Returns nil when the thread does
// not exist.
func (c *Client) Thread(ctx context.Context, threadID string) (*Thread, error) {
	var resp struct {
		Thread *Thread `json:"thread"`
	}
	err := c.run(ctx, threadQuery, map[string]interface{}{"threadId": threadID}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Thread, nil
}

const threadByExternalIDQuery = `
query threadByExternalId($customerId: ID!, $externalId: ID!) {
  threadByExternalId(customerId: $customerId, externalId: $externalId) {` + threadFields + `}
}`

// ThreadByExternalID fetches a thread by the caller-supplied external id,
// scoped to a customer. Returns nil when no thread matches.
func (c *Client) ThreadByExternalID(ctx context.Context, customerID, externalID string) (*Thread, error) {
	var resp struct {
		Thread *Thread `json:"threadByExternalId"`
	}
	vars := map[string]interface{}{
		"customerId": customerID,
		"externalId": externalID,
	}
	if err := c.run(ctx, threadByExternalIDQuery, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Thread, nil
}

const threadsQuery = `
query threads($filters: ThreadsFilter, $first: Int!) {
  threads(filters: $filters, first: $first) {
    edges {
      node {` + threadFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Threads lists threads filtered by remote status, first page only.
func (c *Client) Threads(ctx context.Context, status string, pageSize int) ([]Thread, PageInfo, error) {
	var resp struct {
		Threads connection[Thread] `json:"threads"`
	}
	vars := map[string]interface{}{
		"filters": map[string]interface{}{"statuses": []string{status}},
		"first":   pageSize,
	}
	if err := c.run(ctx, threadsQuery, vars, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.Threads.nodes(), resp.Threads.PageInfo, nil
}

const customerThreadsQuery = `
query customerThreads($customerId: ID!, $first: Int!) {
  customer(customerId: $customerId) {
    threads(first: $first) {
      edges {
        node {` + threadFields + `}
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

// CustomerThreads lists a single customer's threads, first page only.
// Returns nil when the customer does not exist.
func (c *Client) CustomerThreads(ctx context.Context, customerID string, pageSize int) ([]Thread, error) {
	var resp struct {
		Customer *struct {
			Threads connection[Thread] `json:"threads"`
		} `json:"customer"`
	}
	vars := map[string]interface{}{
		"customerId": customerID,
		"first":      pageSize,
	}
	if err := c.run(ctx, customerThreadsQuery, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Customer == nil {
		return nil, nil
	}
	return resp.Customer.Threads.nodes(), nil
}

// CreateThreadInput carries the arguments for CreateThread. Priority is a
// pointer so the remote default applies when unset.
type CreateThreadInput struct {
	CustomerID   string
	Title        string
	Message      string
	Priority     *int
	LabelTypeIDs []string
}

const createThreadMutation = `
mutation createThread($input: CreateThreadInput!) {
  createThread(input: $input) {
    thread {` + threadFields + `}
    error {
      message
      type
      code
      fields {
        field
        message
        type
      }
    }
  }
}`

// CreateThread creates a new thread for a customer with an initial message.
func (c *Client) CreateThread(ctx context.Context, in CreateThreadInput) (*Thread, error) {
	input := map[string]interface{}{
		"customerIdentifier": map[string]interface{}{"customerId": in.CustomerID},
		"title":              in.Title,
		"components": []map[string]interface{}{
			{"componentText": map[string]interface{}{"text": in.Message}},
		},
	}
	if in.Priority != nil {
		input["priority"] = *in.Priority
	}
	if len(in.LabelTypeIDs) > 0 {
		input["labelTypeIds"] = in.LabelTypeIDs
	}

	var resp struct {
		CreateThread struct {
			Thread *Thread        `json:"thread"`
			Error  *MutationError `json:"error"`
		} `json:"createThread"`
	}
	if err := c.run(ctx, createThreadMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.CreateThread.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.CreateThread.Thread == nil {
		return nil, fmt.Errorf("createThread: %w", ErrNoPayload)
	}
	return resp.CreateThread.Thread, nil
}

// threadMutation covers the family of mutations that take a small input and
// return a thread-or-error envelope under a single top-level field.
func (c *Client) threadMutation(ctx context.Context, field, query string, input map[string]interface{}) (*Thread, error) {
	resp := map[string]struct {
		Thread *Thread        `json:"thread"`
		Error  *MutationError `json:"error"`
	}{}
	if err := c.run(ctx, query, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	// A zero-value payload also covers the field key being absent from the
	// response entirely.
	payload := resp[field]
	if err := payload.Error.AsError(); err != nil {
		return nil, err
	}
	if payload.Thread == nil {
		return nil, fmt.Errorf("%s: %w", field, ErrNoPayload)
	}
	return payload.Thread, nil
}

const mutationErrorFields = `
    error {
      message
      type
      code
      fields {
        field
        message
        type
      }
    }
`

const updateThreadTitleMutation = `
mutation updateThreadTitle($input: UpdateThreadTitleInput!) {
  updateThreadTitle(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// UpdateThreadTitle replaces a thread's title.
func (c *Client) UpdateThreadTitle(ctx context.Context, threadID, title string) (*Thread, error) {
	return c.threadMutation(ctx, "updateThreadTitle", updateThreadTitleMutation, map[string]interface{}{
		"threadId": threadID,
		"title":    title,
	})
}

const updateThreadExternalIDMutation = `
mutation updateThreadExternalId($input: UpdateThreadExternalIdInput!) {
  updateThreadExternalId(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// UpdateThreadExternalID sets the caller-owned external id on a thread.
func (c *Client) UpdateThreadExternalID(ctx context.Context, threadID, externalID string) (*Thread, error) {
	return c.threadMutation(ctx, "updateThreadExternalId", updateThreadExternalIDMutation, map[string]interface{}{
		"threadId":   threadID,
		"externalId": externalID,
	})
}

const changeThreadPriorityMutation = `
mutation changeThreadPriority($input: ChangeThreadPriorityInput!) {
  changeThreadPriority(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// ChangeThreadPriority sets the priority ordinal (0 urgent .. 3 low).
// Callers validate the ordinal before this is reached.
func (c *Client) ChangeThreadPriority(ctx context.Context, threadID string, priority int) (*Thread, error) {
	return c.threadMutation(ctx, "changeThreadPriority", changeThreadPriorityMutation, map[string]interface{}{
		"threadId": threadID,
		"priority": priority,
	})
}

const assignThreadMutation = `
mutation assignThread($input: AssignThreadInput!) {
  assignThread(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// AssignThread assigns a thread to a workspace user.
func (c *Client) AssignThread(ctx context.Context, threadID, userID string) (*Thread, error) {
	return c.threadMutation(ctx, "assignThread", assignThreadMutation, map[string]interface{}{
		"threadId": threadID,
		"userId":   userID,
	})
}

const unassignThreadMutation = `
mutation unassignThread($input: UnassignThreadInput!) {
  unassignThread(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// UnassignThread removes the current assignee from a thread.
func (c *Client) UnassignThread(ctx context.Context, threadID string) (*Thread, error) {
	return c.threadMutation(ctx, "unassignThread", unassignThreadMutation, map[string]interface{}{
		"threadId": threadID,
	})
}

const markThreadAsDoneMutation = `
mutation markThreadAsDone($input: MarkThreadAsDoneInput!) {
  markThreadAsDone(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// MarkThreadAsDone moves a thread to the done status.
func (c *Client) MarkThreadAsDone(ctx context.Context, threadID string) (*Thread, error) {
	return c.threadMutation(ctx, "markThreadAsDone", markThreadAsDoneMutation, map[string]interface{}{
		"threadId": threadID,
	})
}

const markThreadAsTodoMutation = `
mutation markThreadAsTodo($input: MarkThreadAsTodoInput!) {
  markThreadAsTodo(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// MarkThreadAsTodo moves a thread back to the todo status, clearing any
// snooze.
func (c *Client) MarkThreadAsTodo(ctx context.Context, threadID string) (*Thread, error) {
	return c.threadMutation(ctx, "markThreadAsTodo", markThreadAsTodoMutation, map[string]interface{}{
		"threadId": threadID,
	})
}

const snoozeThreadMutation = `
mutation snoozeThread($input: SnoozeThreadInput!) {
  snoozeThread(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// SnoozeThread snoozes a thread. The mode/duration contract must already
// have passed ValidateSnooze; durationSeconds < 0 means no duration.
func (c *Client) SnoozeThread(ctx context.Context, threadID, mode string, durationSeconds int) (*Thread, error) {
	if err := ValidateSnooze(mode, durationSeconds); err != nil {
		return nil, err
	}
	input := map[string]interface{}{
		"threadId": threadID,
	}
	if mode == SnoozeModeWaitForReply {
		input["waitForCustomerReply"] = true
	} else {
		input["durationSeconds"] = durationSeconds
	}
	return c.threadMutation(ctx, "snoozeThread", snoozeThreadMutation, input)
}

const addLabelsMutation = `
mutation addLabels($input: AddLabelsInput!) {
  addLabels(input: $input) {
    labels {
      id
      labelType {
        id
        name
        icon
        isArchived
      }
    }` + mutationErrorFields + `
  }
}`

// AddThreadLabels applies label types to a thread and returns the created
// labels.
func (c *Client) AddThreadLabels(ctx context.Context, threadID string, labelTypeIDs []string) ([]Label, error) {
	var resp struct {
		AddLabels struct {
			Labels []Label        `json:"labels"`
			Error  *MutationError `json:"error"`
		} `json:"addLabels"`
	}
	input := map[string]interface{}{
		"threadId":     threadID,
		"labelTypeIds": labelTypeIDs,
	}
	if err := c.run(ctx, addLabelsMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.AddLabels.Error.AsError(); err != nil {
		return nil, err
	}
	return resp.AddLabels.Labels, nil
}

const removeLabelsMutation = `
mutation removeLabels($input: RemoveLabelsInput!) {
  removeLabels(input: $input) {` + mutationErrorFields + `
  }
}`

// RemoveThreadLabels removes labels (by label id, not label type id) from a
// thread.
func (c *Client) RemoveThreadLabels(ctx context.Context, threadID string, labelIDs []string) error {
	var resp struct {
		RemoveLabels struct {
			Error *MutationError `json:"error"`
		} `json:"removeLabels"`
	}
	input := map[string]interface{}{
		"threadId": threadID,
		"labelIds": labelIDs,
	}
	if err := c.run(ctx, removeLabelsMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.RemoveLabels.Error.AsError()
}

const updateThreadTenantMutation = `
mutation updateThreadTenant($input: UpdateThreadTenantInput!) {
  updateThreadTenant(input: $input) {
    thread {` + threadFields + `}` + mutationErrorFields + `
  }
}`

// SetThreadTenant associates a thread with a tenant, identified by the
// tenant's external id.
func (c *Client) SetThreadTenant(ctx context.Context, threadID, tenantExternalID string) (*Thread, error) {
	return c.threadMutation(ctx, "updateThreadTenant", updateThreadTenantMutation, map[string]interface{}{
		"threadId":         threadID,
		"tenantIdentifier": map[string]interface{}{"externalId": tenantExternalID},
	})
}

const createThreadLinkMutation = `
mutation createThreadLink($input: CreateThreadLinkInput!) {
  createThreadLink(input: $input) {
    threadLink {
      id
      url
      label
      createdAt {
        iso8601
      }
    }` + mutationErrorFields + `
  }
}`

// CreateThreadLink attaches an external URL to a thread. label may be empty.
func (c *Client) CreateThreadLink(ctx context.Context, threadID, url, label string) (*ThreadLink, error) {
	input := map[string]interface{}{
		"threadId": threadID,
		"url":      url,
	}
	if label != "" {
		input["label"] = label
	}
	var resp struct {
		CreateThreadLink struct {
			ThreadLink *ThreadLink    `json:"threadLink"`
			Error      *MutationError `json:"error"`
		} `json:"createThreadLink"`
	}
	if err := c.run(ctx, createThreadLinkMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.CreateThreadLink.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.CreateThreadLink.ThreadLink == nil {
		return nil, fmt.Errorf("createThreadLink: %w", ErrNoPayload)
	}
	return resp.CreateThreadLink.ThreadLink, nil
}

const threadLabelsQuery = `
query threadLabels($threadId: ID!) {
  thread(threadId: $threadId) {
    labels {
      id
      labelType {
        id
        name
        icon
        isArchived
      }
    }
  }
}`

// ThreadLabels lists the labels currently applied to a thread. Returns nil
// when the thread does not exist.
func (c *Client) ThreadLabels(ctx context.Context, threadID string) ([]Label, error) {
	var resp struct {
		Thread *struct {
			Labels []Label `json:"labels"`
		} `json:"thread"`
	}
	if err := c.run(ctx, threadLabelsQuery, map[string]interface{}{"threadId": threadID}, &resp); err != nil {
		return nil, err
	}
	if resp.Thread == nil {
		return nil, nil
	}
	return resp.Thread.Labels, nil
}
