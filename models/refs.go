package models

// FolderRef, CollectionRef, OrganizationRef and SendRef share the shape the
// resolver cares about: a stable id and a display name. They are resolved
// through the same generic policy as items.

type FolderRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (f FolderRef) GetID() string   { return f.ID }
func (f FolderRef) GetName() string { return f.Name }

type CollectionRef struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationId,omitempty"`
}

func (c CollectionRef) GetID() string   { return c.ID }
func (c CollectionRef) GetName() string { return c.Name }

type OrganizationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (o OrganizationRef) GetID() string   { return o.ID }
func (o OrganizationRef) GetName() string { return o.Name }

// SendRef is the serve-layer view of a Send: a time-limited share of a text
// or file secret. Payload fields stay opaque to resolution.
type SendRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

func (s SendRef) GetID() string   { return s.ID }
func (s SendRef) GetName() string { return s.Name }
