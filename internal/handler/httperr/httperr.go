// Package httperr defines the JSON envelope written for failed requests.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the guest-facing error body. Status rides along for the
// error middleware and is never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// New builds an envelope carrying the given status and message.
func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// Abort stops the handler chain and writes the envelope. The original
// error rides on the context for the logging middleware; only msg
// reaches the guest.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr: Abort called without an error")
	}

	resp := New(status, msg)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
