// Package handlers contains the gin HTTP handlers of the API server.  All
// request and response bodies use the engine's German wire format.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// respond writes a successful envelope around data.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, common.OK(data))
}

// respondError maps an application error to its HTTP status and writes the
// error envelope.  Non-AppError values are masked as internal errors.
func respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	detail := common.ErrorDetail{Code: code.String(), Message: err.Error()}
	if code == errors.ErrCodeInternal {
		detail.Message = "internal server error"
	}
	c.JSON(code.HTTPStatus(), common.APIResponse[any]{
		Error:     &detail,
		Timestamp: time.Now().UTC(),
	})
}
