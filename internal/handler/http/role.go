package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffline/backoffice-go/internal/domain/role"
	"github.com/staffline/backoffice-go/internal/handler/http/response"
)

type RoleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type roleHandlerImpl struct {
	roleService role.Service
}

func NewRoleHandler(roleService role.Service) RoleHandler {
	return &roleHandlerImpl{roleService: roleService}
}

// Create implements RoleHandler.
func (h *roleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.roleService.CreateRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created", result)
}

// Get implements RoleHandler.
func (h *roleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.roleService.GetRole(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RoleHandler.
func (h *roleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.roleService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements RoleHandler.
func (h *roleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.roleService.UpdateRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated", result)
}

// Delete implements RoleHandler.
func (h *roleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roleService.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role deleted", nil)
}
