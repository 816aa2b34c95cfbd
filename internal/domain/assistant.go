package domain

type SuggestMetadataRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// DocMetadata is the model's suggestion for a document being edited.
type DocMetadata struct {
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

type AskRequest struct {
	Query string `json:"query" validate:"required"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
