package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeSuccess        = 20000
	CodeParamInvalid   = 40001
	CodeOutOfBounds    = 40002
	CodeInternalServer = 50000
)

var msg = map[int]string{
	CodeSuccess:        "success",
	CodeParamInvalid:   "invalid request parameters",
	CodeOutOfBounds:    "point is outside of the indexed area",
	CodeInternalServer: "internal server error",
}

var httpStatus = map[int]int{
	CodeSuccess:        http.StatusOK,
	CodeParamInvalid:   http.StatusBadRequest,
	CodeOutOfBounds:    http.StatusBadRequest,
	CodeInternalServer: http.StatusInternalServerError,
}

// Response is the common envelope for all handlers.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse writes the success envelope with data.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(httpStatus[code], Response{
		Code:    code,
		Message: msg[code],
		Data:    data,
	})
}

// ErrorResponse writes the error envelope for code, carrying err's message.
func ErrorResponse(c *gin.Context, code int, err error) {
	r := Response{
		Code:    code,
		Message: msg[code],
	}
	if err != nil {
		r.Error = err.Error()
	}
	c.JSON(httpStatus[code], r)
}
