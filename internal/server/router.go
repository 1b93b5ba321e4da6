package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"kintacos/internal/order/controller"
)

// NewRouter assembles the full HTTP surface: the order module under
// /api/orders plus a welcome route at the root.
func NewRouter(orderCtrl *controller.OrderController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "welcome to the KinTacos API",
		}); err != nil {
			logger.Error("failed to encode welcome response", zap.Error(err))
		}
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.Create)
		r.Get("/", orderCtrl.List)
		r.Get("/{id}", orderCtrl.Get)
		r.Put("/{id}", orderCtrl.Update)
		r.Patch("/{id}/status", orderCtrl.UpdateStatus)
		r.Delete("/{id}", orderCtrl.Delete)
	})

	return r
}
