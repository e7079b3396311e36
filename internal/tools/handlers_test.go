package tools

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a Server against a stub GraphQL endpoint and counts
// how many requests actually reach it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	client := plain.New("test-key", plain.WithEndpoint(ts.URL))
	return NewServer(client, "test"), &calls
}

func respondData(w http.ResponseWriter, data string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"data":` + data + `}`))
}

func TestHandleSnoozeThreadRejectsInvalidInputWithoutRemoteCall(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"snoozeThread":{"thread":null,"error":null}}`)
	})

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"unknown mode", map[string]interface{}{
			"threadId": "th_1", "mode": "forever",
		}},
		{"duration mode without duration", map[string]interface{}{
			"threadId": "th_1", "mode": "wait_for_duration",
		}},
		{"duration below minimum", map[string]interface{}{
			"threadId": "th_1", "mode": "wait_for_duration", "durationSeconds": float64(30),
		}},
		{"duration above maximum", map[string]interface{}{
			"threadId": "th_1", "mode": "wait_for_duration", "durationSeconds": float64(plain.SnoozeMaxSeconds + 1),
		}},
		{"reply mode with duration", map[string]interface{}{
			"threadId": "th_1", "mode": "wait_for_customer_reply", "durationSeconds": float64(3600),
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := srv.handleSnoozeThread(context.Background(), requestWithArgs(test.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
	assert.Equal(t, int32(0), calls.Load(), "invalid snooze input must not reach the API")
}

func TestHandleSetThreadPriorityRejectsOutOfRange(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"changeThreadPriority":{"thread":null,"error":null}}`)
	})

	for _, priority := range []float64{-1, 4, 99} {
		result, err := srv.handleSetThreadPriority(context.Background(), requestWithArgs(map[string]interface{}{
			"threadId": "th_1",
			"priority": priority,
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError, "priority %v must be rejected", priority)
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandleCreateThreadRejectsInvalidPriority(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"createThread":{"thread":null,"error":null}}`)
	})

	result, err := srv.handleCreateThread(context.Background(), requestWithArgs(map[string]interface{}{
		"customerId": "c_1",
		"title":      "Broken login",
		"message":    "It does not work",
		"priority":   float64(7),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandleGetThreadNotFoundIsInformational(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"thread":null}`)
	})

	result, err := srv.handleGetThread(context.Background(), requestWithArgs(map[string]interface{}{
		"threadId": "th_missing",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError, "a missing thread is not a tool failure")
	assert.Contains(t, textOf(t, result), "No thread found with id th_missing")
}

func TestHandleListThreadsEmptyIsInformational(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"threads":{"edges":[],"pageInfo":{"hasNextPage":false,"endCursor":""}}}`)
	})

	result, err := srv.handleListThreads(context.Background(), requestWithArgs(map[string]interface{}{}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "No threads with status todo.", textOf(t, result))
}

func TestHandleListThreadsRejectsUnknownStatus(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"threads":{"edges":[],"pageInfo":{"hasNextPage":false,"endCursor":""}}}`)
	})

	result, err := srv.handleListThreads(context.Background(), requestWithArgs(map[string]interface{}{
		"status": "archived",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandleGetThreadTimelineMissingCustomer(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"customer":null}`)
	})

	result, err := srv.handleGetThreadTimeline(context.Background(), requestWithArgs(map[string]interface{}{
		"customerId": "c_missing",
		"threadId":   "th_1",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "No customer found with id c_missing")
}

func TestHandleGetThreadTimelineNoMatchingEntries(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"customer":{"timelineEntries":{"edges":[],"pageInfo":{"hasNextPage":false,"endCursor":""}}}}`)
	})

	result, err := srv.handleGetThreadTimeline(context.Background(), requestWithArgs(map[string]interface{}{
		"customerId": "c_1",
		"threadId":   "th_quiet",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "No timeline entries found for thread th_quiet")
}

func TestHandleUpdateThreadTitleEmptyEnvelope(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"updateThreadTitle":{"thread":null,"error":null}}`)
	})

	result, err := srv.handleUpdateThreadTitle(context.Background(), requestWithArgs(map[string]interface{}{
		"threadId": "th_1",
		"title":    "New title",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError, "an empty mutation envelope is a tool error, not a success")
	assert.Contains(t, textOf(t, result), "neither a result nor an error")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandleUpsertCustomerEmptyEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"upsertCustomer":{"result":null,"customer":null,"error":null}}`)
	})

	result, err := srv.handleUpsertCustomer(context.Background(), requestWithArgs(map[string]interface{}{
		"email": "ada@example.com",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleListThreadsReportsNextPage(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "threads(filters") {
			respondData(w, `{"threads":{"edges":[
				{"node":{"id":"th_1","status":"TODO","priority":2,"customer":{"id":"c_1","fullName":"Ada"},"createdAt":{"iso8601":"2026-01-01T00:00:00Z"},"updatedAt":{"iso8601":"2026-01-01T00:00:00Z"}}}
			],"pageInfo":{"hasNextPage":true,"endCursor":"cur_1"}}}`)
			return
		}
		respondData(w, `{"customer":{"id":"c_1","fullName":"Ada","email":{"email":"ada@example.com","isVerified":true},"createdAt":{"iso8601":"2026-01-01T00:00:00Z"},"updatedAt":{"iso8601":"2026-01-01T00:00:00Z"}}}`)
	})

	result, err := srv.handleListThreads(context.Background(), requestWithArgs(map[string]interface{}{
		"pageSize": float64(1),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, `"hasNextPage": true`)
	assert.Contains(t, text, `"th_1"`)
}

func TestHandleSetTierForCompanyArguments(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"updateCompanyTier":{"error":null}}`)
	})

	result, err := srv.handleSetTierForCompany(context.Background(), requestWithArgs(map[string]interface{}{
		"tierIdentifier":    "tier_1",
		"companyIdentifier": "co_1",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Company co_1 assigned to tier tier_1.")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandleMissingRequiredArgument(t *testing.T) {
	srv, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		respondData(w, `{"thread":null}`)
	})

	result, err := srv.handleGetThread(context.Background(), requestWithArgs(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, int32(0), calls.Load())
}
