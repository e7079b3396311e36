package plain

import "fmt"

// Timestamp is Plain's nested timestamp object, flattened to its canonical
// ISO 8601 form for display.
type Timestamp struct {
	ISO8601 string `json:"iso8601"`
}

func (t Timestamp) String() string {
	return t.ISO8601
}

// PageInfo is the standard Relay pagination block. Only a single page is
// ever fetched; HasNextPage tells callers that more data exists remotely.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// connection is the Relay edges/node wrapper. nodes flattens it to the
// ordered slice every caller actually wants.
type connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
	PageInfo PageInfo `json:"pageInfo"`
}

func (c connection[T]) nodes() []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

// UntitledPlaceholder is substituted for absent thread titles.
const UntitledPlaceholder = "Untitled"

// Thread statuses as Plain reports them.
const (
	ThreadStatusTodo    = "TODO"
	ThreadStatusSnoozed = "SNOOZED"
	ThreadStatusDone    = "DONE"
)

// ThreadStatusFromFilter maps the tool-facing status filter enumeration
// (todo/snoozed/done) to the remote status constant.
func ThreadStatusFromFilter(filter string) (string, error) {
	switch filter {
	case "todo":
		return ThreadStatusTodo, nil
	case "snoozed":
		return ThreadStatusSnoozed, nil
	case "done":
		return ThreadStatusDone, nil
	default:
		return "", fmt.Errorf("unknown status filter %q: must be one of todo, snoozed, done", filter)
	}
}

// priorityNames maps the priority ordinal to its display name, in Plain's
// fixed order.
var priorityNames = [4]string{"urgent", "high", "normal", "low"}

// PriorityName maps a priority ordinal to its name. The mapping is total
// over 0-3; anything else is a validation error and never reaches the API.
func PriorityName(priority int) (string, error) {
	if priority < 0 || priority > 3 {
		return "", fmt.Errorf("priority must be between 0 (urgent) and 3 (low), got %d", priority)
	}
	return priorityNames[priority], nil
}

// Snooze modes accepted by SnoozeThread.
const (
	SnoozeModeWaitForReply    = "wait_for_customer_reply"
	SnoozeModeWaitForDuration = "wait_for_duration"
)

// Snooze duration bounds in seconds (1 minute to 60 days).
const (
	SnoozeMinSeconds = 60
	SnoozeMaxSeconds = 5184000
)

// ValidateSnooze checks the mode/duration contract before any remote call:
// wait_for_duration requires a duration within bounds, wait_for_customer_reply
// forbids one. durationSeconds < 0 means the argument was not supplied.
func ValidateSnooze(mode string, durationSeconds int) error {
	switch mode {
	case SnoozeModeWaitForReply:
		if durationSeconds >= 0 {
			return fmt.Errorf("durationSeconds must not be set when mode is %s", SnoozeModeWaitForReply)
		}
	case SnoozeModeWaitForDuration:
		if durationSeconds < 0 {
			return fmt.Errorf("durationSeconds is required when mode is %s", SnoozeModeWaitForDuration)
		}
		if durationSeconds < SnoozeMinSeconds || durationSeconds > SnoozeMaxSeconds {
			return fmt.Errorf("durationSeconds must be between %d and %d, got %d", SnoozeMinSeconds, SnoozeMaxSeconds, durationSeconds)
		}
	default:
		return fmt.Errorf("unknown snooze mode %q: must be %s or %s", mode, SnoozeModeWaitForReply, SnoozeModeWaitForDuration)
	}
	return nil
}

// CustomerRef is the customer reference embedded in threads.
type CustomerRef struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email"`
}

// UserRef is a workspace user reference (assignee, actor).
type UserRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Label is a label applied to a thread.
type Label struct {
	ID        string    `json:"id"`
	LabelType LabelType `json:"labelType"`
}

// LabelType is a workspace label definition.
type LabelType struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       *string `json:"icon"`
	IsArchived bool    `json:"isArchived"`
}

// Thread is a support thread.
type Thread struct {
	ID          string      `json:"id"`
	ExternalID  *string     `json:"externalId"`
	Title       *string     `json:"title"`
	Status      string      `json:"status"`
	Priority    int         `json:"priority"`
	Customer    CustomerRef `json:"customer"`
	AssignedTo  *UserRef    `json:"assignedTo"`
	Labels      []Label     `json:"labels"`
	CreatedAt   Timestamp   `json:"createdAt"`
	UpdatedAt   Timestamp   `json:"updatedAt"`
	PreviewText *string     `json:"previewText"`
}

// DisplayTitle returns the thread title, defaulting absent titles to the
// fixed placeholder.
func (t Thread) DisplayTitle() string {
	if t.Title == nil || *t.Title == "" {
		return UntitledPlaceholder
	}
	return *t.Title
}

// EmailAddress is a customer email with its verification state.
type EmailAddress struct {
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// Customer is a person receiving support.
type Customer struct {
	ID         string       `json:"id"`
	FullName   string       `json:"fullName"`
	ShortName  *string      `json:"shortName"`
	Email      EmailAddress `json:"email"`
	ExternalID *string      `json:"externalId"`
	Company    *Company     `json:"company"`
	CreatedAt  Timestamp    `json:"createdAt"`
	UpdatedAt  Timestamp    `json:"updatedAt"`
}

// Company groups customers by organisation.
type Company struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DomainName string    `json:"domainName"`
	Tier       *Tier     `json:"tier"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// Tenant is an external-system account grouping customers.
type Tenant struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"externalId"`
	Name       string    `json:"name"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// Tier is a support tier assignable to companies and tenants.
type Tier struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ExternalID *string `json:"externalId"`
}

// CustomerGroup is a workspace-defined customer grouping.
type CustomerGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// User is a workspace user.
type User struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	PublicName string `json:"publicName"`
	Email      string `json:"email"`
}

// Workspace is the Plain workspace the API key belongs to.
type Workspace struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PublicName string `json:"publicName"`
}

// ThreadLink is an external URL attached to a thread.
type ThreadLink struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Label     *string   `json:"label"`
	CreatedAt Timestamp `json:"createdAt"`
}

// UpsertResult is the create/update discriminator echoed by upsert
// mutations. The remote system decides create-vs-update by identifier or
// email match; this client performs no deduplication itself.
type UpsertResult string

const (
	UpsertResultCreated UpsertResult = "CREATED"
	UpsertResultUpdated UpsertResult = "UPDATED"
	UpsertResultNoop    UpsertResult = "NOOP"
)
