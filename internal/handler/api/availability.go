package api

import (
	"net/http"

	resdto "open-classrooms/internal/handler/dto/response"
	"open-classrooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// The read endpoints never fail: errors are recorded on the context for the request log and a
// degraded body is served with 200.
type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Open classrooms
// @Description Free time windows for every classroom, grouped by building. Empty object when data is unavailable.
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.OpenClassroomsResponse
// @Router /api/open-classrooms [get]
func (h *AvailabilityHandler) GetOpenClassrooms(c *gin.Context) {
	view, err := h.q.GetAvailability(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpenClassrooms(view))
}

// @Summary Last updated
// @Description Time of the last successful refresh, or null
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.LastUpdatedResponse
// @Router /api/last-updated [get]
func (h *AvailabilityHandler) GetLastUpdated(c *gin.Context) {
	last, err := h.q.GetLastUpdated(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		last = nil
	}
	c.JSON(http.StatusOK, resdto.FromLastUpdated(last))
}

// @Summary Cooldown status
// @Description Whether a manual refresh would currently be rejected
// @Tags refresh
// @Produce json
// @Success 200 {object} resdto.CooldownStatusResponse
// @Router /api/cooldown-status [get]
func (h *AvailabilityHandler) GetCooldownStatus(c *gin.Context) {
	status, err := h.q.GetCooldownStatus(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		status = nil
	}
	c.JSON(http.StatusOK, resdto.FromCooldownStatus(status))
}
