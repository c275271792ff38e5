// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/talentbook/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{userID}", h.GetUser)
	})
}

// ListUsers returns a page of users, optionally filtered by ?type=.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := ListUsersParams{
		Page:  core.QueryInt(r, "page", DefaultPage),
		Limit: core.QueryInt(r, "limit", DefaultLimit),
		Type:  r.URL.Query().Get("type"),
	}
	params.Normalize()

	users, total, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err, "Failed to fetch users")
		return
	}

	core.OK(w, ListUsersResponse{
		Users:      ToUserResponseList(users),
		Pagination: core.NewPagination(params.Page, params.Limit, total),
	})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "email already registered")
			return
		}
		core.InternalServerError(w, err, "Failed to create user")
		return
	}

	core.Created(w, map[string]any{"user": ToCreatedUserResponse(user)})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := core.URLParamInt64(r, "userID")
	if !ok {
		core.NotFound(w, "User")
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "User")
			return
		}
		core.InternalServerError(w, err, "Failed to fetch user")
		return
	}

	core.OK(w, map[string]any{"user": ToUserResponse(user)})
}
