package plain

import (
	"context"
	"fmt"
)

// EventComponent is one display component of a custom event. Only text
// components are supported here; richer components pass through as JSON on
// the way in and are ignored on the way out.
type EventComponent struct {
	Text string `json:"text"`
}

// CustomEvent is a caller-defined structured event attached to a thread or
// customer timeline.
type CustomEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt Timestamp `json:"createdAt"`
}

// eventComponentsInput converts plain-text component strings into Plain's
// component input shape.
func eventComponentsInput(texts []string) []map[string]interface{} {
	components := make([]map[string]interface{}, 0, len(texts))
	for _, t := range texts {
		components = append(components, map[string]interface{}{
			"componentText": map[string]interface{}{"text": t},
		})
	}
	return components
}

const createThreadEventMutation = `
mutation createThreadEvent($input: CreateThreadEventInput!) {
  createThreadEvent(input: $input) {
    threadEvent {
      id
      title
      createdAt {
        iso8601
      }
    }` + mutationErrorFields + `
  }
}`

// CreateThreadEvent records a custom event on a thread's timeline.
func (c *Client) CreateThreadEvent(ctx context.Context, threadID, title string, componentTexts []string) (*CustomEvent, error) {
	input := map[string]interface{}{
		"threadId": threadID,
		"title":    title,
	}
	if len(componentTexts) > 0 {
		input["components"] = eventComponentsInput(componentTexts)
	}
	var resp struct {
		CreateThreadEvent struct {
			ThreadEvent *CustomEvent   `json:"threadEvent"`
			Error       *MutationError `json:"error"`
		} `json:"createThreadEvent"`
	}
	if err := c.run(ctx, createThreadEventMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.CreateThreadEvent.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.CreateThreadEvent.ThreadEvent == nil {
		return nil, fmt.Errorf("createThreadEvent: %w", ErrNoPayload)
	}
	return resp.CreateThreadEvent.ThreadEvent, nil
}

const createCustomerEventMutation = `
mutation createCustomerEvent($input: CreateCustomerEventInput!) {
  createCustomerEvent(input: $input) {
    customerEvent {
      id
      title
      createdAt {
        iso8601
      }
    }` + mutationErrorFields + `
  }
}`

// CreateCustomerEvent records a custom event on a customer's timeline,
// outside any particular thread.
func (c *Client) CreateCustomerEvent(ctx context.Context, customerID, title string, componentTexts []string) (*CustomEvent, error) {
	input := map[string]interface{}{
		"customerId": customerID,
		"title":      title,
	}
	if len(componentTexts) > 0 {
		input["components"] = eventComponentsInput(componentTexts)
	}
	var resp struct {
		CreateCustomerEvent struct {
			CustomerEvent *CustomEvent   `json:"customerEvent"`
			Error         *MutationError `json:"error"`
		} `json:"createCustomerEvent"`
	}
	if err := c.run(ctx, createCustomerEventMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.CreateCustomerEvent.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.CreateCustomerEvent.CustomerEvent == nil {
		return nil, fmt.Errorf("createCustomerEvent: %w", ErrNoPayload)
	}
	return resp.CreateCustomerEvent.CustomerEvent, nil
}
