package domain

import "time"

// MaxAttachmentSize caps a single attachment at 500 KiB. Attachments are
// stored inline in the collection blob, so the cap protects the storage
// medium rather than the transport.
const MaxAttachmentSize = 500 * 1024

type Document struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Tags        []string     `json:"tags"`
	Category    string       `json:"category"`
	CreatedBy   string       `json:"createdBy"` // display name snapshot, not a user reference
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	History     []DocVersion `json:"history"` // newest first, prior states only
	AccessLevel Role         `json:"accessLevel"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// DocVersion is an immutable snapshot of a document's state before an
// update. Versions are append-only and never mutated or deleted.
type DocVersion struct {
	VersionID     string    `json:"versionId"`
	Content       string    `json:"content"`
	UpdatedAt     time.Time `json:"updatedAt"`
	UpdatedBy     string    `json:"updatedBy"`
	ChangeSummary string    `json:"changeSummary,omitempty"`
}

type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MimeType   string    `json:"type"`
	SizeBytes  int64     `json:"size"`
	Data       string    `json:"data"` // base64-encoded bytes
	UploadedAt time.Time `json:"uploadedAt"`
}

// SaveDocumentRequest is an upsert: an ID matching a stored document updates
// it (pushing history), anything else creates a fresh one.
type SaveDocumentRequest struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"required"`
	Content     string       `json:"content" validate:"required"`
	Tags        []string     `json:"tags"`
	Category    string       `json:"category"`
	AccessLevel Role         `json:"accessLevel" validate:"omitempty,oneof=ADMIN EDITOR VIEWER"`
	Attachments []Attachment `json:"attachments"`
}

type AttachmentUpload struct {
	Name     string `json:"name" validate:"required"`
	MimeType string `json:"type" validate:"required"`
	Data     string `json:"data" validate:"required"` // base64-encoded bytes
}
