// Package httperr carries structured errors through gin's error stack so
// the outermost middleware can render them with the same envelope the
// booking endpoints use.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint returns: a flat message
// under "error", plus optional detail (field errors on a bad booking
// request, for example).
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
