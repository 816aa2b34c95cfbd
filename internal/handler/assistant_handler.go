package handler

import (
	"encoding/json"
	"net/http"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/service"
	"wikiflow-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type AssistantHandler struct {
	assistant  *service.AssistantService
	docService *service.DocumentService
	validate   *validator.Validate
}

func NewAssistantHandler(assistant *service.AssistantService, docService *service.DocumentService) *AssistantHandler {
	return &AssistantHandler{
		assistant:  assistant,
		docService: docService,
		validate:   validator.New(),
	}
}

// SuggestMetadata returns an AI-drafted summary and tag list for a document
// being edited. Failures come back as fixed placeholder strings, never as
// HTTP errors.
func (h *AssistantHandler) SuggestMetadata(w http.ResponseWriter, r *http.Request) {
	var req domain.SuggestMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Success(w, h.assistant.SuggestMetadata(r.Context(), req.Title, req.Content))
}

// Ask answers a question grounded in the whole document collection.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req domain.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	docs, err := h.docService.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load documents")
		return
	}

	answer := h.assistant.AnswerFromCorpus(r.Context(), req.Query, docs)
	response.Success(w, domain.AskResponse{Answer: answer})
}
