package user

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	appuser "userapi/internal/app/user"
	"userapi/internal/http/request"
	"userapi/internal/http/responses"
	"userapi/internal/logging"
)

const (
	msgConnectionError = "Database connection error"
	msgCreateFailed    = "Could not create user"
)

type Handler struct {
	service appuser.Service
	logger  logging.Logger
}

func NewHandler(service appuser.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "user_http_handler"),
	}
}

// Create POST /user
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if !request.BindAndValidate(w, r, &req) {
		return
	}

	dto, err := h.service.Create(ctx, appuser.CreateUserInput{
		Name:  *req.Name,
		Email: *req.Email,
	})
	if err != nil {
		reqID := middleware.GetReqID(ctx)
		if appuser.IsConnectionError(err) {
			h.logger.Error("connection error", "error", err, "request_id", reqID)
			responses.WriteError(w, http.StatusInternalServerError, msgConnectionError)
			return
		}
		h.logger.Error("database error", "error", err, "request_id", reqID)
		responses.WriteError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	responses.WriteJSON(w, http.StatusOK, Response{
		ID:    dto.Id,
		Name:  dto.Name,
		Email: dto.Email,
	})
}
