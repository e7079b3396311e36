package plain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// UnknownCustomerLabel is the fallback display name used when a per-thread
// customer lookup fails during listing enrichment.
const UnknownCustomerLabel = "Unknown customer"

// ThreadListItem is a thread enriched with its customer's display name for
// listings.
type ThreadListItem struct {
	Thread
	CustomerName string `json:"customerName"`
}

// ThreadsWithCustomerNames lists threads by status and enriches each row
// with the customer's display name via one parallel lookup per thread.
// Listing order is preserved. A failed lookup degrades that single row to
// the fallback label; it never fails the whole listing.
func (c *Client) ThreadsWithCustomerNames(ctx context.Context, status string, pageSize int) ([]ThreadListItem, PageInfo, error) {
	threads, pageInfo, err := c.Threads(ctx, status, pageSize)
	if err != nil {
		return nil, PageInfo{}, err
	}

	items := make([]ThreadListItem, len(threads))
	g, gctx := errgroup.WithContext(ctx)
	for i, th := range threads {
		items[i].Thread = th
		g.Go(func() error {
			items[i].CustomerName = c.customerDisplayName(gctx, th.Customer.ID)
			return nil
		})
	}
	// No branch returns an error; Wait only joins the fan-out.
	_ = g.Wait()

	return items, pageInfo, nil
}

// customerDisplayName resolves a customer id to a display name, falling
// back to the fixed label on any failure.
func (c *Client) customerDisplayName(ctx context.Context, customerID string) string {
	customer, err := c.Customer(ctx, customerID)
	if err != nil || customer == nil {
		return UnknownCustomerLabel
	}
	if customer.FullName != "" {
		return customer.FullName
	}
	if customer.Email.Email != "" {
		return customer.Email.Email
	}
	return UnknownCustomerLabel
}
