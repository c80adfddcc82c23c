package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/domain"
)

// Resp is the envelope every endpoint returns. Code mirrors the HTTP status
// so clients can branch without reading headers.
type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK writes a 200 with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, New(CodeOK, CodeMsgMap[CodeOK], data))
}

// Fail writes status with an optional message override.
func Fail(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = msgFor(status)
	}
	c.JSON(status, New(status, msg, nil))
}

// AbortFail is Fail for middleware: it also stops the chain.
func AbortFail(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = msgFor(status)
	}
	c.AbortWithStatusJSON(status, New(status, msg, nil))
}

// FromError maps the domain sentinels onto status classes; anything
// unrecognized is a 500 with a generic message so internals do not leak.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		Fail(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		Fail(c, http.StatusInternalServerError, "")
	}
}
