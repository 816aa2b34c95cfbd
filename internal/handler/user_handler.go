package handler

import (
	"encoding/json"
	"net/http"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/service"
	"wikiflow-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	service  *service.UserService
	validate *validator.Validate
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{
		service:  svc,
		validate: validator.New(),
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.AvailableUsers())
}

func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load current user")
		return
	}

	response.Success(w, user)
}

// Switch changes the active demo persona. Unknown ids fall back to the
// default persona rather than failing.
func (h *UserHandler) Switch(w http.ResponseWriter, r *http.Request) {
	var req domain.SwitchUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, err := h.service.SwitchUser(r.Context(), req.UserID)
	if err != nil {
		response.InternalError(w, "Failed to switch user")
		return
	}

	response.Success(w, user)
}
