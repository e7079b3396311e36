package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/mcp"
)

// Page size bounds shared by every list tool.
const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// jsonResult pretty-prints a payload as the tool's text content.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// pagedResult wraps one page of results with the hint that more data
// exists beyond the requested page size.
func pagedResult(results interface{}, page plain.PageInfo) (*mcp.CallToolResult, error) {
	return jsonResult(struct {
		Results     interface{} `json:"results"`
		HasNextPage bool        `json:"hasNextPage"`
	}{results, page.HasNextPage})
}

// apiError surfaces a remote or transport failure as a tool error result.
// Failures are never retried; the caller of this single invocation sees
// the remote message verbatim.
func apiError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// pageSizeArg reads the pageSize argument, applying the default and the
// 1..100 bound.
func pageSizeArg(request mcp.CallToolRequest) (int, error) {
	size := request.GetInt("pageSize", defaultPageSize)
	if size < 1 || size > maxPageSize {
		return 0, fmt.Errorf("pageSize must be between 1 and %d, got %d", maxPageSize, size)
	}
	return size, nil
}

// stringSliceArg reads an optional array-of-strings argument.
func stringSliceArg(request mcp.CallToolRequest, key string) ([]string, error) {
	raw, ok := request.GetArguments()[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must contain only strings, got %T", key, v)
		}
		out = append(out, s)
	}
	return out, nil
}

// requireStringSliceArg reads a required, non-empty array-of-strings
// argument.
func requireStringSliceArg(request mcp.CallToolRequest, key string) ([]string, error) {
	values, err := stringSliceArg(request, key)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s is required and must not be empty", key)
	}
	return values, nil
}
