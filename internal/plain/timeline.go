package plain

import (
	"context"
	"fmt"
	"strings"
)

// TimelinePageSize is the fixed ceiling on the customer feed fetch. The
// feed is fetched customer-wide and filtered to one thread client-side, so
// entries beyond this bound are invisible to the caller. This is a known
// completeness limit, stated in the tool description.
const TimelinePageSize = 50

// Fallback labels for actors whose variant carries no usable name.
const (
	actorLabelSupportUser = "Support user"
	actorLabelCustomer    = "Customer"
	actorLabelSystem      = "System"
	actorLabelBot         = "Bot"
	actorLabelUnknown     = "Unknown"
)

// Actor variant discriminators as reported by the remote API.
const (
	actorTypeUser        = "UserActor"
	actorTypeCustomer    = "CustomerActor"
	actorTypeSystem      = "SystemActor"
	actorTypeMachineUser = "MachineUserActor"
)

// Entry variant discriminators as reported by the remote API.
const (
	entryTypeChat   = "ChatEntry"
	entryTypeEmail  = "EmailEntry"
	entryTypeNote   = "NoteEntry"
	entryTypeCustom = "CustomEntry"
)

// timelineActor is the decoded actor union. Exactly one of the variant
// blocks is populated, selected by Typename; unrecognized variants leave
// all of them empty.
type timelineActor struct {
	Typename string `json:"__typename"`
	User     *struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"user"`
	Customer *struct {
		FullName string `json:"fullName"`
		Email    *struct {
			Email string `json:"email"`
		} `json:"email"`
	} `json:"customer"`
	SystemType  string `json:"systemType"`
	MachineUser *struct {
		FullName string `json:"fullName"`
	} `json:"machineUser"`
}

// timelineEntryBody is the decoded entry union. As with timelineActor,
// Typename selects which variant's fields are meaningful.
type timelineEntryBody struct {
	Typename    string  `json:"__typename"`
	Text        string  `json:"text"`
	TextContent *string `json:"textContent"`
	Subject     *string `json:"subject"`
	Title       string  `json:"title"`
	Components  []struct {
		Typename string `json:"__typename"`
		Text     string `json:"text"`
	} `json:"components"`
}

// rawTimelineEntry is one feed entry as fetched, before resolution.
type rawTimelineEntry struct {
	ID        string            `json:"id"`
	Timestamp Timestamp         `json:"timestamp"`
	ThreadID  *string           `json:"threadId"`
	Actor     timelineActor     `json:"actor"`
	Entry     timelineEntryBody `json:"entry"`
}

// TimelineEntry is one resolved entry of a thread's timeline: who did
// what, flattened to display strings. Entries keep feed order.
type TimelineEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Type      string `json:"type"`
	Content   string `json:"content"`
}

// resolveActor maps the actor union to a display name. Total over the
// known variants; anything unrecognized resolves to the fixed unknown
// label so remote-added variants degrade instead of breaking.
func resolveActor(a timelineActor) string {
	switch a.Typename {
	case actorTypeUser:
		if a.User != nil {
			if a.User.FullName != "" {
				return a.User.FullName
			}
			if a.User.Email != "" {
				return a.User.Email
			}
		}
		return actorLabelSupportUser
	case actorTypeCustomer:
		if a.Customer != nil {
			if a.Customer.FullName != "" {
				return a.Customer.FullName
			}
			if a.Customer.Email != nil && a.Customer.Email.Email != "" {
				return a.Customer.Email.Email
			}
		}
		return actorLabelCustomer
	case actorTypeSystem:
		if a.SystemType != "" {
			return fmt.Sprintf("%s (%s)", actorLabelSystem, a.SystemType)
		}
		return actorLabelSystem
	case actorTypeMachineUser:
		if a.MachineUser != nil && a.MachineUser.FullName != "" {
			return a.MachineUser.FullName
		}
		return actorLabelBot
	default:
		return actorLabelUnknown
	}
}

// resolveEntry maps the entry union to a (kind, content) pair. Custom
// entries concatenate their plain-text components, falling back to the
// entry title; unrecognized kinds yield an empty content string.
func resolveEntry(e timelineEntryBody) (kind, content string) {
	switch e.Typename {
	case entryTypeChat:
		return "chat", e.Text
	case entryTypeEmail:
		if e.TextContent != nil && *e.TextContent != "" {
			return "email", *e.TextContent
		}
		if e.Subject != nil {
			return "email", *e.Subject
		}
		return "email", ""
	case entryTypeNote:
		return "note", e.Text
	case entryTypeCustom:
		var texts []string
		for _, comp := range e.Components {
			if comp.Typename == "ComponentText" && comp.Text != "" {
				texts = append(texts, comp.Text)
			}
		}
		if len(texts) > 0 {
			return "custom", strings.Join(texts, "\n")
		}
		return "custom", e.Title
	default:
		return "unknown", ""
	}
}

// reconstructTimeline filters a customer-wide feed down to one thread and
// resolves each retained entry's actor and body. Feed order is preserved;
// entries are never re-sorted.
func reconstructTimeline(feed []rawTimelineEntry, threadID string) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(feed))
	for _, raw := range feed {
		if raw.ThreadID == nil || *raw.ThreadID != threadID {
			continue
		}
		kind, content := resolveEntry(raw.Entry)
		entries = append(entries, TimelineEntry{
			ID:        raw.ID,
			Timestamp: raw.Timestamp.ISO8601,
			Actor:     resolveActor(raw.Actor),
			Type:      kind,
			Content:   content,
		})
	}
	return entries
}

const timelineQuery = `
query customerTimeline($customerId: ID!, $first: Int!) {
  customer(customerId: $customerId) {
    timelineEntries(first: $first) {
      edges {
        node {
          id
          timestamp {
            iso8601
          }
          threadId
          actor {
            __typename
            ... on UserActor {
              user {
                fullName
                email
              }
            }
            ... on CustomerActor {
              customer {
                fullName
                email {
                  email
                }
              }
            }
            ... on SystemActor {
              systemType
            }
            ... on MachineUserActor {
              machineUser {
                fullName
              }
            }
          }
          entry {
            __typename
            ... on ChatEntry {
              text
            }
            ... on EmailEntry {
              textContent
              subject
            }
            ... on NoteEntry {
              text
            }
            ... on CustomEntry {
              title
              components {
                __typename
                ... on ComponentText {
                  text
                }
              }
            }
          }
        }
      }
    }
  }
}`

// ThreadTimeline fetches the customer's activity feed (one page, bounded
// by TimelinePageSize) and reconstructs the portion belonging to the given
// thread. Returns nil entries and no error when the customer does not
// exist.
func (c *Client) ThreadTimeline(ctx context.Context, customerID, threadID string) ([]TimelineEntry, error) {
	var resp struct {
		Customer *struct {
			TimelineEntries connection[rawTimelineEntry] `json:"timelineEntries"`
		} `json:"customer"`
	}
	vars := map[string]interface{}{
		"customerId": customerID,
		"first":      TimelinePageSize,
	}
	if err := c.run(ctx, timelineQuery, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Customer == nil {
		return nil, nil
	}
	return reconstructTimeline(resp.Customer.TimelineEntries.nodes(), threadID), nil
}
