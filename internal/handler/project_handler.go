package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/service"
	"wikiflow-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	service     *service.ProjectService
	userService *service.UserService
	validate    *validator.Validate
}

func NewProjectHandler(svc *service.ProjectService, userService *service.UserService) *ProjectHandler {
	return &ProjectHandler{
		service:     svc,
		userService: userService,
		validate:    validator.New(),
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list projects")
		return
	}

	response.Success(w, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	project, err := h.service.Get(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.NotFound(w, "Project not found")
			return
		}
		response.InternalError(w, "Failed to load project")
		return
	}

	response.Success(w, project)
}

func (h *ProjectHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveProjectRequest
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

	project, err := h.service.Save(r.Context(), actor, &req)
	if err != nil {
		response.InternalError(w, "Failed to save project")
		return
	}

	response.Success(w, project)
}

func (h *ProjectHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	var req domain.AddTaskRequest
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

	project, err := h.service.AddTask(r.Context(), actor, projectID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.NotFound(w, "Project not found")
			return
		}
		response.InternalError(w, "Failed to add task")
		return
	}

	response.Created(w, project)
}

func (h *ProjectHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	projectID := vars["id"]
	taskID := vars["taskId"]

	var req domain.MoveTaskRequest
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

	project, err := h.service.MoveTask(r.Context(), actor, projectID, taskID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			response.NotFound(w, "Project not found")
		case errors.Is(err, service.ErrTaskNotFound):
			response.NotFound(w, "Task not found")
		default:
			response.InternalError(w, "Failed to move task")
		}
		return
	}

	response.Success(w, project)
}

func (h *ProjectHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	projectID := vars["id"]
	taskID := vars["taskId"]

	actor, err := h.userService.CurrentUser(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to resolve current user")
		return
	}

	project, err := h.service.DeleteTask(r.Context(), actor, projectID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			response.NotFound(w, "Project not found")
		case errors.Is(err, service.ErrTaskNotFound):
			response.NotFound(w, "Task not found")
		default:
			response.InternalError(w, "Failed to delete task")
		}
		return
	}

	response.Success(w, project)
}
