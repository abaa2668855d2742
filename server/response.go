package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/seqkit/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta describes the pipeline run that produced Data.
type Meta struct {
	Pipeline string `json:"pipeline"`
	RunID    string `json:"run_id"`
	Items    int    `json:"items"`
}

// RespondWithError writes err as a structured error body. AppErrors keep
// their status; anything else becomes a 500 INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.Wrap(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondOKWithMeta sends a 200 response with data and run metadata.
func RespondOKWithMeta(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Meta: meta})
}
