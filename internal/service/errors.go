package service

import "errors"

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmptyDocument      = errors.New("title and content are required")
	ErrForbidden          = errors.New("user is not allowed to edit this document")
	ErrAttachmentTooLarge = errors.New("attachment exceeds the 500 KiB limit")
)
