package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	resdto "open-classrooms/internal/handler/dto/response"
	"open-classrooms/internal/handler/httperr"
	"open-classrooms/internal/pkg/ptr"
	"open-classrooms/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RefreshHandler struct {
	cmds commands.RefreshCommands
}

func NewRefreshHandler(cmds commands.RefreshCommands) *RefreshHandler {
	return &RefreshHandler{cmds: cmds}
}

// @Summary Refresh availability
// @Description Fetch fresh availability from the scheduling source, subject to the refresh cooldown
// @Tags refresh
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/refresh [post]
func (h *RefreshHandler) Refresh(c *gin.Context) {
	outcome, err := h.cmds.RequestRefresh(c.Request.Context())
	if err != nil {
		var cdErr *commands.CooldownError
		if errors.As(err, &cdErr) {
			remaining := cdErr.RemainingMinutes()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(cdErr.Remaining.Seconds()))))
			httperr.AbortWithResponse(c, err, httperr.Response{
				Status:           http.StatusTooManyRequests,
				Error:            fmt.Sprintf("Refresh cooldown active. Please wait %.1f more minutes.", remaining),
				RemainingMinutes: ptr.Of(remaining),
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to refresh data")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefreshOutcome(outcome))
}
