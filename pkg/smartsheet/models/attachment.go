package models

// AttachmentMeta describes an attachment without its download URL.
type AttachmentMeta struct {
	ID                uint64 `json:"id"`
	ParentID          uint64 `json:"parentId"`
	ParentType        string `json:"parentType"`                  // COMMENT, ROW or SHEET
	AttachmentType    string `json:"attachmentType"`              // FILE, LINK, GOOGLE_DRIVE, ...
	AttachmentSubType string `json:"attachmentSubType,omitempty"` // DOCUMENT, PDF, SPREADSHEET, ...
	MimeType          string `json:"mimeType,omitempty"`
	Name              string `json:"name"`
	SizeInKB          uint64 `json:"sizeInKb,omitempty"`
	CreatedAt         string `json:"createdAt"`
	CreatedBy         User   `json:"createdBy"`
}

// Attachment is an attachment with a temporary download URL.
type Attachment struct {
	AttachmentMeta
	// URL is valid for URLExpiresInMillis after retrieval.
	URL                string `json:"url"`
	URLExpiresInMillis uint64 `json:"urlExpiresInMillis,omitempty"`
}

// Discussion is a comment thread on a sheet or row.
type Discussion struct {
	ID                 uint64       `json:"id"`
	Title              string       `json:"title"`
	CommentCount       uint64       `json:"commentCount"`
	CreatedBy          User         `json:"createdBy"`
	LastCommentedAt    string       `json:"lastCommentedAt"`
	LastCommentedUser  User         `json:"lastCommentedUser"`
	CommentAttachments []Attachment `json:"commentAttachments,omitempty"`
}
