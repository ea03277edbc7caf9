package httperr

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds is advertised on every response a client may simply repeat.
const RetryAfterSeconds = 1

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		Retryable bool   `json:"retryable,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware and
// writes the public message only.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, detail, false)
}

// AbortRetryable answers 503 with a Retry-After hint.
func AbortRetryable(c *gin.Context, err error, msg string) {
	SetRetryAfter(c)
	abort(c, http.StatusServiceUnavailable, err, msg, nil, true)
}

func SetRetryAfter(c *gin.Context) {
	c.Header("Retry-After", strconv.Itoa(RetryAfterSeconds))
}

func abort(c *gin.Context, status int, err error, msg string, detail any, retryable bool) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Retryable = retryable
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
