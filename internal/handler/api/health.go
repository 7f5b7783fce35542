package api

import (
	"context"
	"net/http"

	resdto "open-classrooms/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// @Summary Root
// @Tags health
// @Produce json
// @Success 200 {string} string "Hello World"
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, "Hello World")
}

// @Summary Health check
// @Description Report whether the cache backend answers
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, resdto.HealthResponse{Status: "degraded", Redis: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok", Redis: "ok"})
}
