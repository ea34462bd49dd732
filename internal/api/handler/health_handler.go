package handler

import (
	"net/http"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/sembarang8788-lab/cafe-backend/internal/infra/repository/db"
)

type HealthHandler struct {
	store db.UnifiedDB
}

func NewHealthHandler(store db.UnifiedDB) *HealthHandler {
	if store == nil {
		panic("store cannot be nil")
	}
	return &HealthHandler{
		store: store,
	}
}

type liveInfo struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// @Summary liveness
// @Tags health
// @Produce json
// @Success 200 {object} handler.Response{data=handler.liveInfo} "online"
// @Router / [get]
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	SuccessJSON(w, http.StatusOK, liveInfo{
		Status:  "online",
		Message: "Cafe Backend API",
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary readiness, ping資料庫
// @Tags health
// @Produce json
// @Success 200 {object} handler.Response "healthy"
// @Failure 500 {object} handler.Response "unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.store.GetDB().DB()
	if err != nil {
		ErrorJSON(w, int(er.InternalErrorCode), "unhealthy: "+err.Error())
		return
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		ErrorJSON(w, int(er.InternalErrorCode), "unhealthy: "+err.Error())
		return
	}
	MessageJSON(w, http.StatusOK, "healthy")
}

// Robots 原站台掛在Vercel上, 保留crawler相關路由
func (h *HealthHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("User-agent: *\nAllow: /"))
}

func (h *HealthHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
