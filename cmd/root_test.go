package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing api key maps to config code", ErrMissingAPIKey, ExitCodeConfig},
		{"wrapped missing api key maps to config code", fmt.Errorf("startup: %w", ErrMissingAPIKey), ExitCodeConfig},
		{"any other error maps to general code", errors.New("boom"), ExitCodeError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, getExitCode(test.err))
		})
	}
}

func TestVersionCommandOutput(t *testing.T) {
	SetVersion("1.2.3")

	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "plain-mcp version 1.2.3\n", out.String())
}
