package models

import (
	"encoding/json"
	"fmt"
)

// Hyperlink is a cell link to a URL, or a permalink to a report, sheet or
// dashboard (sight). At most one of the ids is expected to be set.
type Hyperlink struct {
	// URL is the link target. For resource links it holds the permalink.
	URL string `json:"url,omitempty"`
	// ReportID links to a report.
	ReportID *uint64 `json:"reportId,omitempty"`
	// SheetID links to a sheet.
	SheetID *uint64 `json:"sheetId,omitempty"`
	// SightID links to a dashboard.
	SightID *uint64 `json:"sightId,omitempty"`
}

// URLLink returns a plain URL hyperlink.
func URLLink(url string) *Hyperlink {
	return &Hyperlink{URL: url}
}

// Contact identifies a person in a contact list cell.
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// MarshalJSON tags the contact with `"objectType": "CONTACT"`.
func (c Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ObjectType ObjectType `json:"objectType"`
		Email      string     `json:"email"`
		Name       string     `json:"name,omitempty"`
	}{ObjectContact, c.Email, c.Name})
}

// NameAddr formats the contact as `Name <email>`, or just the email when
// the name is unknown.
func (c Contact) NameAddr() string {
	if c.Name == "" {
		return c.Email
	}
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}

// Contacts is the decoded content of a multi-contact cell.
type Contacts []Contact

// Emails returns the email address of each contact.
func (cs Contacts) Emails() []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Email)
	}
	return out
}

// NameAddrs returns each contact formatted with NameAddr.
func (cs Contacts) NameAddrs() []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.NameAddr())
	}
	return out
}

// ObjectValue is the envelope for list-shaped object values
// (MULTI_PICKLIST, MULTI_CONTACT).
type ObjectValue struct {
	ObjectType ObjectType `json:"objectType"`
	Values     any        `json:"values"`
}

// User is the name and email of a creator or modifier.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Image is an image embedded in a cell.
type Image struct {
	ID      string `json:"id"`
	AltText string `json:"altText,omitempty"`
	Height  uint64 `json:"height,omitempty"`
	Width   uint64 `json:"width,omitempty"`
}
