package health

import (
	"context"
	"net/http"
	"time"

	"userapi/internal/http/responses"
	"userapi/internal/logging"
)

// Pinger is satisfied by *db.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Response struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

type Handler struct {
	db      Pinger
	timeout time.Duration
	logger  logging.Logger
}

func NewHandler(db Pinger, logger logging.Logger) *Handler {
	return &Handler{
		db:      db,
		timeout: 2 * time.Second,
		logger:  logger.With("component", "health_handler"),
	}
}

// Check GET /health pings the pool.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", "error", err)
		responses.WriteJSON(w, http.StatusServiceUnavailable, Response{Status: "degraded", DB: "unreachable"})
		return
	}

	responses.WriteJSON(w, http.StatusOK, Response{Status: "ok", DB: "ok"})
}
