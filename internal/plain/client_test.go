package plain

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gqlRequest is the wire shape machinebox/graphql posts.
type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func decodeRequest(t *testing.T, r *http.Request) gqlRequest {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var req gqlRequest
	require.NoError(t, json.Unmarshal(body, &req))
	return req
}

func respond(t *testing.T, w http.ResponseWriter, data string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(`{"data":` + data + `}`))
	require.NoError(t, err)
}

func TestClientSendsBearerAndVariables(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		req := decodeRequest(t, r)
		assert.Contains(t, req.Query, "thread(threadId: $threadId)")
		assert.Equal(t, "th_123", req.Variables["threadId"])
		respond(t, w, `{"thread":{"id":"th_123","title":"Hello","status":"TODO","priority":2,"customer":{"id":"c_1","fullName":"Ada"},"createdAt":{"iso8601":"2026-01-01T00:00:00Z"},"updatedAt":{"iso8601":"2026-01-02T00:00:00Z"}}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	thread, err := c.Thread(context.Background(), "th_123")
	require.NoError(t, err)
	require.NotNil(t, thread)
	assert.Equal(t, "th_123", thread.ID)
	assert.Equal(t, "Hello", *thread.Title)
	assert.Equal(t, "2026-01-01T00:00:00Z", thread.CreatedAt.ISO8601)
	assert.Equal(t, "Ada", thread.Customer.FullName)
}

func TestThreadNotFoundIsNilNotError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"thread":null}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	thread, err := c.Thread(context.Background(), "th_missing")
	require.NoError(t, err)
	assert.Nil(t, thread)
}

func TestMutationErrorEnvelopeIsUnwrapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"updateThreadTitle":{"thread":null,"error":{"message":"Validation failed","type":"VALIDATION","code":"input_validation","fields":[{"field":"title","message":"must not be empty","type":"VALIDATION"}]}}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	_, err := c.UpdateThreadTitle(context.Background(), "th_1", "")
	require.Error(t, err)

	var mutErr *MutationError
	require.True(t, errors.As(err, &mutErr))
	assert.Equal(t, "input_validation", mutErr.Code)
	assert.Contains(t, err.Error(), "title: must not be empty")
}

func TestMutationEmptyEnvelopeIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"updateThreadTitle":{"thread":null,"error":null}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	thread, err := c.UpdateThreadTitle(context.Background(), "th_1", "New title")
	require.Error(t, err, "an envelope with neither half must not become a nil success")
	assert.ErrorIs(t, err, ErrNoPayload)
	assert.Nil(t, thread)
}

func TestUpsertEmptyEnvelopeIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"upsertCustomer":{"result":null,"customer":null,"error":null}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	customer, _, err := c.UpsertCustomer(context.Background(), UpsertCustomerInput{Email: "ada@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPayload)
	assert.Nil(t, customer)
}

func TestMutationMismatchedFieldIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"somethingElse":{"thread":null,"error":null}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	_, err := c.MarkThreadAsDone(context.Background(), "th_1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestGraphQLErrorSurfacesAsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"forbidden"}]}`))
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	_, err := c.MyWorkspace(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestSnoozeValidationFailsBeforeAnyRemoteCall(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respond(t, w, `{"snoozeThread":{"thread":null,"error":null}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))

	cases := []struct {
		mode     string
		duration int
	}{
		{SnoozeModeWaitForDuration, -1},
		{SnoozeModeWaitForDuration, 10},
		{SnoozeModeWaitForDuration, SnoozeMaxSeconds + 1},
		{SnoozeModeWaitForReply, 3600},
		{"never", 3600},
	}
	for _, tc := range cases {
		_, err := c.SnoozeThread(context.Background(), "th_1", tc.mode, tc.duration)
		assert.Error(t, err, "mode=%s duration=%d", tc.mode, tc.duration)
	}
	assert.Equal(t, int32(0), calls.Load(), "invalid snooze input must not reach the API")
}

func TestThreadsWithCustomerNamesDegradesPerItem(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		switch {
		case strings.Contains(req.Query, "threads(filters"):
			respond(t, w, `{"threads":{"edges":[
				{"node":{"id":"th_1","status":"TODO","priority":2,"customer":{"id":"c_ok"},"createdAt":{"iso8601":"2026-01-01T00:00:00Z"},"updatedAt":{"iso8601":"2026-01-01T00:00:00Z"}}},
				{"node":{"id":"th_2","status":"TODO","priority":1,"customer":{"id":"c_boom"},"createdAt":{"iso8601":"2026-01-02T00:00:00Z"},"updatedAt":{"iso8601":"2026-01-02T00:00:00Z"}}}
			],"pageInfo":{"hasNextPage":false,"endCursor":""}}}`)
		case req.Variables["customerId"] == "c_ok":
			respond(t, w, `{"customer":{"id":"c_ok","fullName":"Ada Lovelace","email":{"email":"ada@example.com","isVerified":true},"createdAt":{"iso8601":"2026-01-01T00:00:00Z"},"updatedAt":{"iso8601":"2026-01-01T00:00:00Z"}}}`)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	items, _, err := c.ThreadsWithCustomerNames(context.Background(), ThreadStatusTodo, 25)
	require.NoError(t, err, "one failed lookup must not fail the listing")

	require.Len(t, items, 2)
	assert.Equal(t, "th_1", items[0].ID)
	assert.Equal(t, "Ada Lovelace", items[0].CustomerName)
	assert.Equal(t, "th_2", items[1].ID)
	assert.Equal(t, UnknownCustomerLabel, items[1].CustomerName)
}

func TestListingNeverExceedsRequestedBound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, float64(2), req.Variables["first"])
		respond(t, w, `{"customers":{"edges":[],"pageInfo":{"hasNextPage":false,"endCursor":""}}}`)
	}))
	defer ts.Close()

	c := New("test-key", WithEndpoint(ts.URL))
	customers, _, err := c.Customers(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, customers, "no matching records is an empty result, not an error")
}
