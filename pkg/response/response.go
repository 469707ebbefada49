package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"erp-lookup/pkg/apperror"
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

// Error normalizes err and sends it with its status. data, when set, is
// returned alongside so clients can still render what is cached.
func Error(c *gin.Context, err error, data any) {
	appErr := apperror.Normalize(err)
	status := appErr.Status
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}

	message := appErr.Message
	if status == http.StatusInternalServerError && appErr.Kind == apperror.KindUnknown {
		message = DefaultErrorMessage
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   message,
		Data:      data,
		Errors: ErrorDetail{
			Kind:    string(appErr.Kind),
			Details: appErr.Details,
		},
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}
