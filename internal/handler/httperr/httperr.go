package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body. Clients read the message from the top-level "error" string.
type Response struct {
	Status           int      `json:"-"`
	Error            string   `json:"error"`
	RemainingMinutes *float64 `json:"remaining_minutes,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	AbortWithResponse(c, err, Response{Status: status, Error: msg})
}

func AbortWithResponse(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithResponse: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
