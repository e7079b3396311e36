package plain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string {
	return &s
}

func TestResolveActor(t *testing.T) {
	tests := []struct {
		name     string
		actor    timelineActor
		expected string
	}{
		{
			"user with name",
			timelineActor{Typename: actorTypeUser, User: &struct {
				FullName string `json:"fullName"`
				Email    string `json:"email"`
			}{FullName: "Grace Hopper", Email: "grace@example.com"}},
			"Grace Hopper",
		},
		{
			"user falls back to email",
			timelineActor{Typename: actorTypeUser, User: &struct {
				FullName string `json:"fullName"`
				Email    string `json:"email"`
			}{Email: "grace@example.com"}},
			"grace@example.com",
		},
		{
			"user with nothing falls back to label",
			timelineActor{Typename: actorTypeUser},
			"Support user",
		},
		{
			"customer with name",
			timelineActor{Typename: actorTypeCustomer, Customer: &struct {
				FullName string `json:"fullName"`
				Email    *struct {
					Email string `json:"email"`
				} `json:"email"`
			}{FullName: "Ada Lovelace"}},
			"Ada Lovelace",
		},
		{
			"customer falls back to email",
			timelineActor{Typename: actorTypeCustomer, Customer: &struct {
				FullName string `json:"fullName"`
				Email    *struct {
					Email string `json:"email"`
				} `json:"email"`
			}{Email: &struct {
				Email string `json:"email"`
			}{Email: "ada@example.com"}}},
			"ada@example.com",
		},
		{
			"customer with nothing falls back to label",
			timelineActor{Typename: actorTypeCustomer},
			"Customer",
		},
		{
			"system without subtype",
			timelineActor{Typename: actorTypeSystem},
			"System",
		},
		{
			"system with subtype",
			timelineActor{Typename: actorTypeSystem, SystemType: "workflow_rule"},
			"System (workflow_rule)",
		},
		{
			"machine user with name",
			timelineActor{Typename: actorTypeMachineUser, MachineUser: &struct {
				FullName string `json:"fullName"`
			}{FullName: "Deploy Bot"}},
			"Deploy Bot",
		},
		{
			"machine user without name falls back to label",
			timelineActor{Typename: actorTypeMachineUser},
			"Bot",
		},
		{
			"unrecognized variant",
			timelineActor{Typename: "FutureActor"},
			"Unknown",
		},
		{
			"absent actor",
			timelineActor{},
			"Unknown",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, resolveActor(test.actor))
		})
	}
}

func TestResolveEntry(t *testing.T) {
	tests := []struct {
		name            string
		entry           timelineEntryBody
		expectedKind    string
		expectedContent string
	}{
		{
			"chat",
			timelineEntryBody{Typename: entryTypeChat, Text: "hello there"},
			"chat", "hello there",
		},
		{
			"email with body",
			timelineEntryBody{Typename: entryTypeEmail, TextContent: strptr("the body"), Subject: strptr("the subject")},
			"email", "the body",
		},
		{
			"email falls back to subject",
			timelineEntryBody{Typename: entryTypeEmail, Subject: strptr("the subject")},
			"email", "the subject",
		},
		{
			"email with empty body falls back to subject",
			timelineEntryBody{Typename: entryTypeEmail, TextContent: strptr(""), Subject: strptr("the subject")},
			"email", "the subject",
		},
		{
			"note",
			timelineEntryBody{Typename: entryTypeNote, Text: "internal note"},
			"note", "internal note",
		},
		{
			"custom joins text components",
			timelineEntryBody{Typename: entryTypeCustom, Title: "Refund", Components: []struct {
				Typename string `json:"__typename"`
				Text     string `json:"text"`
			}{
				{Typename: "ComponentText", Text: "line one"},
				{Typename: "ComponentSpacer"},
				{Typename: "ComponentText", Text: "line two"},
			}},
			"custom", "line one\nline two",
		},
		{
			"custom without text components falls back to title",
			timelineEntryBody{Typename: entryTypeCustom, Title: "Refund issued", Components: []struct {
				Typename string `json:"__typename"`
				Text     string `json:"text"`
			}{{Typename: "ComponentSpacer"}}},
			"custom", "Refund issued",
		},
		{
			"unrecognized kind yields empty content",
			timelineEntryBody{Typename: "FutureEntry", Text: "ignored"},
			"unknown", "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kind, content := resolveEntry(test.entry)
			assert.Equal(t, test.expectedKind, kind)
			assert.Equal(t, test.expectedContent, content)
		})
	}
}

func TestReconstructTimelineFiltersAndPreservesOrder(t *testing.T) {
	feed := []rawTimelineEntry{
		{
			ID:        "t1",
			Timestamp: Timestamp{ISO8601: "2026-01-01T10:00:00Z"},
			ThreadID:  strptr("th_target"),
			Actor:     timelineActor{Typename: actorTypeCustomer},
			Entry:     timelineEntryBody{Typename: entryTypeChat, Text: "first"},
		},
		{
			ID:        "t2",
			Timestamp: Timestamp{ISO8601: "2026-01-01T11:00:00Z"},
			ThreadID:  strptr("th_other"),
			Actor:     timelineActor{Typename: actorTypeCustomer},
			Entry:     timelineEntryBody{Typename: entryTypeChat, Text: "different thread"},
		},
		{
			ID:        "t3",
			Timestamp: Timestamp{ISO8601: "2026-01-01T12:00:00Z"},
			ThreadID:  nil, // customer-level entry, no thread
			Entry:     timelineEntryBody{Typename: entryTypeCustom, Title: "Signed up"},
		},
		{
			ID:        "t4",
			Timestamp: Timestamp{ISO8601: "2026-01-01T13:00:00Z"},
			ThreadID:  strptr("th_target"),
			Actor:     timelineActor{Typename: actorTypeSystem},
			Entry:     timelineEntryBody{Typename: entryTypeNote, Text: "second"},
		},
	}

	entries := reconstructTimeline(feed, "th_target")

	assert.Len(t, entries, 2)
	assert.Equal(t, "t1", entries[0].ID)
	assert.Equal(t, "Customer", entries[0].Actor)
	assert.Equal(t, "chat", entries[0].Type)
	assert.Equal(t, "first", entries[0].Content)
	assert.Equal(t, "t4", entries[1].ID)
	assert.Equal(t, "System", entries[1].Actor)
	assert.Equal(t, "note", entries[1].Type)
	assert.Equal(t, "second", entries[1].Content)
}

func TestReconstructTimelineEmptyFeed(t *testing.T) {
	entries := reconstructTimeline(nil, "th_target")
	assert.Empty(t, entries)
}
