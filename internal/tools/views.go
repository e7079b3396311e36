package tools

import "github.com/tellahq/plain-mcp/internal/plain"

// threadJSON is the flattened thread shape returned to the host: priority
// gets its display name, timestamps collapse to ISO 8601 strings, labels
// collapse to their names and a missing title becomes the fixed
// placeholder.
type threadJSON struct {
	ID           string  `json:"id"`
	ExternalID   *string `json:"externalId,omitempty"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Priority     int     `json:"priority"`
	PriorityName string  `json:"priorityName,omitempty"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	Assignee     string  `json:"assignee,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	PreviewText  string  `json:"previewText,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// threadView reshapes a thread for display. customerName overrides the
// name embedded in the thread when the listing enrichment resolved one.
func threadView(t plain.Thread, customerName string) threadJSON {
	view := threadJSON{
		ID:         t.ID,
		ExternalID: t.ExternalID,
		Title:      t.DisplayTitle(),
		Status:     t.Status,
		Priority:   t.Priority,
		CustomerID: t.Customer.ID,
		CreatedAt:  t.CreatedAt.ISO8601,
		UpdatedAt:  t.UpdatedAt.ISO8601,
	}
	if name, err := plain.PriorityName(t.Priority); err == nil {
		view.PriorityName = name
	}
	if customerName != "" {
		view.CustomerName = customerName
	} else if t.Customer.FullName != "" {
		view.CustomerName = t.Customer.FullName
	} else if t.Customer.Email != nil {
		view.CustomerName = *t.Customer.Email
	}
	if t.AssignedTo != nil {
		view.Assignee = t.AssignedTo.FullName
	}
	for _, l := range t.Labels {
		view.Labels = append(view.Labels, l.LabelType.Name)
	}
	if t.PreviewText != nil {
		view.PreviewText = *t.PreviewText
	}
	return view
}

// customerJSON is the flattened customer shape returned to the host.
type customerJSON struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	ExternalID    string `json:"externalId,omitempty"`
	Company       string `json:"company,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func customerView(c plain.Customer) customerJSON {
	view := customerJSON{
		ID:            c.ID,
		FullName:      c.FullName,
		Email:         c.Email.Email,
		EmailVerified: c.Email.IsVerified,
		CreatedAt:     c.CreatedAt.ISO8601,
		UpdatedAt:     c.UpdatedAt.ISO8601,
	}
	if c.ExternalID != nil {
		view.ExternalID = *c.ExternalID
	}
	if c.Company != nil {
		view.Company = c.Company.Name
	}
	return view
}

// companyJSON is the flattened company shape returned to the host.
type companyJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DomainName string `json:"domainName"`
	Tier       string `json:"tier,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

func companyView(c plain.Company) companyJSON {
	view := companyJSON{
		ID:         c.ID,
		Name:       c.Name,
		DomainName: c.DomainName,
		CreatedAt:  c.CreatedAt.ISO8601,
		UpdatedAt:  c.UpdatedAt.ISO8601,
	}
	if c.Tier != nil {
		view.Tier = c.Tier.Name
	}
	return view
}

// tenantJSON is the flattened tenant shape returned to the host.
type tenantJSON struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

func tenantView(t plain.Tenant) tenantJSON {
	return tenantJSON{
		ID:         t.ID,
		ExternalID: t.ExternalID,
		Name:       t.Name,
		CreatedAt:  t.CreatedAt.ISO8601,
		UpdatedAt:  t.UpdatedAt.ISO8601,
	}
}
