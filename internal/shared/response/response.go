package response

import (
	"net/http"

	"go-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the only error shape clients ever receive.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes data as the bare JSON body.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// NoContent answers 204 without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// Abort writes the error body and stops the middleware chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// AbortError resolves err through apperror.ToHTTP and stops the chain.
func AbortError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Abort(c, httpErr.Status, httpErr.Message)
}
