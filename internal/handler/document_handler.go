package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/render"
	"wikiflow-server/internal/service"
	"wikiflow-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type DocumentHandler struct {
	service     *service.DocumentService
	userService *service.UserService
	renderer    *render.Renderer
	validate    *validator.Validate
}

func NewDocumentHandler(svc *service.DocumentService, userService *service.UserService, renderer *render.Renderer) *DocumentHandler {
	return &DocumentHandler{
		service:     svc,
		userService: userService,
		renderer:    renderer,
		validate:    validator.New(),
	}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list documents")
		return
	}

	response.Success(w, docs)
}

func (h *DocumentHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	actor, err := h.userService.CurrentUser(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to resolve current user")
		return
	}

	doc, err := h.service.Save(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyDocument):
			response.BadRequest(w, err.Error())
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(w, err.Error())
		case errors.Is(err, service.ErrAttachmentTooLarge):
			response.PayloadTooLarge(w, err.Error())
		default:
			response.InternalError(w, "Failed to save document")
		}
		return
	}

	response.Success(w, doc)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["id"]

	doc, err := h.service.Get(r.Context(), docID)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.NotFound(w, "Document not found")
			return
		}
		response.InternalError(w, "Failed to load document")
		return
	}

	response.Success(w, doc)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), docID); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.NotFound(w, "Document not found")
			return
		}
		response.InternalError(w, "Failed to delete document")
		return
	}

	response.Success(w, map[string]string{"message": "Document deleted successfully"})
}

func (h *DocumentHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["id"]

	var upload domain.AttachmentUpload
	if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(upload); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	actor, err := h.userService.CurrentUser(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to resolve current user")
		return
	}

	doc, err := h.service.AddAttachment(r.Context(), actor, docID, &upload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttachmentTooLarge):
			response.PayloadTooLarge(w, err.Error())
		case errors.Is(err, service.ErrDocumentNotFound):
			response.NotFound(w, "Document not found")
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(w, err.Error())
		default:
			response.BadRequest(w, "Failed to attach file")
		}
		return
	}

	response.Created(w, doc)
}

func (h *DocumentHandler) Rendered(w http.ResponseWriter, r *http.Request) {
	docID := mux.Vars(r)["id"]

	doc, err := h.service.Get(r.Context(), docID)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.NotFound(w, "Document not found")
			return
		}
		response.InternalError(w, "Failed to load document")
		return
	}

	html, err := h.renderer.Render(doc)
	if err != nil {
		response.InternalError(w, "Failed to render document")
		return
	}

	response.Success(w, map[string]string{"id": doc.ID, "html": html})
}
