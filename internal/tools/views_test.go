package tools

import (
	"testing"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/stretchr/testify/assert"
)

func TestThreadViewReshaping(t *testing.T) {
	title := "Login broken"
	external := "ext-42"
	thread := plain.Thread{
		ID:         "th_1",
		ExternalID: &external,
		Title:      &title,
		Status:     plain.ThreadStatusTodo,
		Priority:   0,
		Customer:   plain.CustomerRef{ID: "c_1", FullName: "Ada Lovelace"},
		AssignedTo: &plain.UserRef{ID: "u_1", FullName: "Grace Hopper"},
		Labels: []plain.Label{
			{ID: "l_1", LabelType: plain.LabelType{ID: "lt_1", Name: "bug"}},
		},
		CreatedAt: plain.Timestamp{ISO8601: "2026-01-01T00:00:00Z"},
		UpdatedAt: plain.Timestamp{ISO8601: "2026-01-02T00:00:00Z"},
	}

	view := threadView(thread, "")

	assert.Equal(t, "Login broken", view.Title)
	assert.Equal(t, "urgent", view.PriorityName)
	assert.Equal(t, "Ada Lovelace", view.CustomerName)
	assert.Equal(t, "Grace Hopper", view.Assignee)
	assert.Equal(t, []string{"bug"}, view.Labels)
	assert.Equal(t, "2026-01-01T00:00:00Z", view.CreatedAt)
}

func TestThreadViewDefaultsMissingTitle(t *testing.T) {
	view := threadView(plain.Thread{ID: "th_1", Priority: 2}, "")
	assert.Equal(t, plain.UntitledPlaceholder, view.Title)
	assert.Equal(t, "normal", view.PriorityName)
}

func TestThreadViewEnrichedNameWins(t *testing.T) {
	thread := plain.Thread{
		ID:       "th_1",
		Customer: plain.CustomerRef{ID: "c_1", FullName: "Embedded Name"},
	}
	view := threadView(thread, "Enriched Name")
	assert.Equal(t, "Enriched Name", view.CustomerName)
}

func TestCustomerView(t *testing.T) {
	external := "crm-7"
	customer := plain.Customer{
		ID:         "c_1",
		FullName:   "Ada Lovelace",
		Email:      plain.EmailAddress{Email: "ada@example.com", IsVerified: true},
		ExternalID: &external,
		Company:    &plain.Company{ID: "co_1", Name: "Analytical Engines"},
		CreatedAt:  plain.Timestamp{ISO8601: "2026-01-01T00:00:00Z"},
		UpdatedAt:  plain.Timestamp{ISO8601: "2026-01-01T00:00:00Z"},
	}

	view := customerView(customer)

	assert.Equal(t, "ada@example.com", view.Email)
	assert.True(t, view.EmailVerified)
	assert.Equal(t, "crm-7", view.ExternalID)
	assert.Equal(t, "Analytical Engines", view.Company)
}
