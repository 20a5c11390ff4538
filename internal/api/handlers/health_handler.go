package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eightd-studio/engine/internal/api/types"
	"github.com/eightd-studio/engine/pkg/database"
	"github.com/eightd-studio/engine/pkg/logger"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler { return &HealthHandler{db: db} }

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.OK(map[string]string{"status": "ok"}))
}

// Readiness reports ready only while the database answers a ping.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()
	if err := database.Ping(ctx, h.db); err != nil {
		logger.FromContext(r.Context()).Warn("readiness check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, types.APIResponse{
			Success: false,
			Data:    map[string]string{"status": "unavailable"},
			Message: "Database unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, types.OK(map[string]string{"status": "ready"}))
}
