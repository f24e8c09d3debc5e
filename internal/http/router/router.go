package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"userapi/internal/config"
	_ "userapi/internal/http/apidocs" // registers the swagger document
	"userapi/internal/http/handlers/greeting"
	"userapi/internal/http/handlers/health"
	userhandler "userapi/internal/http/handlers/user"
	"userapi/internal/http/responses"
	"userapi/internal/logging"
)

func NewRouter(
	logger logging.Logger,
	cfg config.HTTPConfig,
	greetingHandler *greeting.Handler,
	healthHandler *health.Handler,
	userHandler *userhandler.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger, cfg)

	r.Get("/", greetingHandler.Hello)
	r.Get("/hey", greetingHandler.Hey)
	r.Post("/echo", greetingHandler.Echo)

	r.With(bodyLimitMiddleware(cfg.MaxJSONBodyBytes)).Post("/user", userHandler.Create)

	r.Get("/health", healthHandler.Check)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteNotFound(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMethodNotAllowed(w, r)
	})

	return r
}
