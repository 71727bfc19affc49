package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-spatial/pkg/common/http/request"
	"github.com/huynhanx03/go-spatial/pkg/common/http/response"
	"github.com/huynhanx03/go-spatial/pkg/quadtree"
)

// HandlerFunc is the generic function signature
type HandlerFunc[T any, R any] func(context.Context, *T) (R, error)

// Wrap converts a generic handler to a Gin handler: it binds and validates
// the request, dispatches, and maps errors onto the response envelope.
// An out-of-bounds insert maps to CodeOutOfBounds rather than a server error.
func Wrap[T any, R any](h HandlerFunc[T, R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := request.ParseRequest[T](c)
		if err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, err)
			return
		}

		res, err := h(c.Request.Context(), req)
		if err != nil {
			var oob *quadtree.OutOfBoundsError[float64]
			if errors.As(err, &oob) {
				response.ErrorResponse(c, response.CodeOutOfBounds, err)
				return
			}
			response.ErrorResponse(c, response.CodeInternalServer, err)
			return
		}

		response.SuccessResponse(c, response.CodeSuccess, res)
	}
}
