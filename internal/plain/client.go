package plain

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tellahq/plain-mcp/pkg/logging"

	"github.com/machinebox/graphql"
)

// DefaultEndpoint is Plain's production GraphQL endpoint.
const DefaultEndpoint = "https://core-api.uk.plain.com/graphql/v1"

// Client talks to the Plain GraphQL API. It is immutable after construction
// and safe for concurrent use; every call opens its own request and no state
// is retained between calls.
type Client struct {
	endpoint string
	apiKey   string
	gql      *graphql.Client
}

// Option configures a Client.
type Option func(*options)

type options struct {
	endpoint   string
	httpClient *http.Client
}

// WithEndpoint overrides the GraphQL endpoint. Used for tests and staging
// workspaces.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// New creates a Plain API client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	o := options{endpoint: DefaultEndpoint}
	for _, opt := range opts {
		opt(&o)
	}

	var gqlOpts []graphql.ClientOption
	if o.httpClient != nil {
		gqlOpts = append(gqlOpts, graphql.WithHTTPClient(o.httpClient))
	}
	gql := graphql.NewClient(o.endpoint, gqlOpts...)
	gql.Log = func(s string) {
		logging.Debug("plain", "%s", s)
	}

	return &Client{
		endpoint: o.endpoint,
		apiKey:   apiKey,
		gql:      gql,
	}
}

// run executes a single query or mutation with named variables and decodes
// the response data into out. Transport and GraphQL-level errors are
// returned as-is; mutation-level error envelopes are the caller's concern.
func (c *Client) run(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	if err := c.gql.Run(ctx, req, out); err != nil {
		return fmt.Errorf("plain api request: %w", err)
	}
	return nil
}
