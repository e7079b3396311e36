package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithArgs(args map[string]interface{}) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

// textOf extracts the text content of a tool result.
func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestPageSizeArg(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected int
		wantErr  bool
	}{
		{"default when absent", map[string]interface{}{}, defaultPageSize, false},
		{"explicit value", map[string]interface{}{"pageSize": float64(50)}, 50, false},
		{"lower bound", map[string]interface{}{"pageSize": float64(1)}, 1, false},
		{"upper bound", map[string]interface{}{"pageSize": float64(100)}, 100, false},
		{"zero rejected", map[string]interface{}{"pageSize": float64(0)}, 0, true},
		{"above max rejected", map[string]interface{}{"pageSize": float64(101)}, 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			size, err := pageSizeArg(requestWithArgs(test.args))
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, size)
		})
	}
}

func TestStringSliceArg(t *testing.T) {
	values, err := stringSliceArg(requestWithArgs(map[string]interface{}{
		"ids": []interface{}{"a", "b"},
	}), "ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)

	values, err = stringSliceArg(requestWithArgs(map[string]interface{}{}), "ids")
	require.NoError(t, err)
	assert.Nil(t, values)

	_, err = stringSliceArg(requestWithArgs(map[string]interface{}{
		"ids": "not-an-array",
	}), "ids")
	assert.Error(t, err)

	_, err = stringSliceArg(requestWithArgs(map[string]interface{}{
		"ids": []interface{}{"a", 42},
	}), "ids")
	assert.Error(t, err)
}

func TestRequireStringSliceArg(t *testing.T) {
	_, err := requireStringSliceArg(requestWithArgs(map[string]interface{}{}), "ids")
	assert.Error(t, err)

	_, err = requireStringSliceArg(requestWithArgs(map[string]interface{}{
		"ids": []interface{}{},
	}), "ids")
	assert.Error(t, err)

	values, err := requireStringSliceArg(requestWithArgs(map[string]interface{}{
		"ids": []interface{}{"x"},
	}), "ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, values)
}
