package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "syncnotes/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error renders err. A *pkgErrors.HTTPError keeps its status, code and message;
// anything else is a 500 with the default message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	c.JSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ErrorWithDetails is Error with extra details under "errors".
func ErrorWithDetails(c *gin.Context, err error, details any) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	c.JSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
		Errors:    details,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden aborts with 403.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
