package request

import (
	"github.com/gin-gonic/gin"
)

// ParseRequest binds the request into T using the binding matching the
// request method and content type (query params for GET, JSON for POST),
// running the validator tags declared on T.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
