package http

import (
	"fmt"
	"net/http"

	"github.com/flowers-service/cmd/api/metrics"
	"github.com/go-chi/chi/v5"
)

type ServerConfig struct {
	Host string
	Port int
}

func NewServer(config ServerConfig, h *FlowerHandler) *http.Server {
	r := chi.NewRouter()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery           — catches panics before they kill the goroutine
	//  3. Logger             — one structured line per request
	//  4. CORS               — set CORS headers
	//  5. Timeout            — per-request deadline
	r.Use(metrics.Middleware)
	r.Use(Recovery)
	r.Use(RequestLogger)
	r.Use(CORS)
	r.Use(Timeout)

	r.Get("/health", health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/flowers", func(r chi.Router) {
		r.Get("/", h.listFlowers)
		r.Post("/", h.createFlower)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getFlowerById)
			r.Put("/", h.updateFlower)
			r.Delete("/", h.deleteFlower)
			r.Patch("/stock", h.adjustStock)
		})
	})

	server := http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: r,
	}
	return &server
}

/* Tests the http server connection.  */
func health(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    "OK",
	})
}
