package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, &ErrorDetail{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return errorJSON(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return errorJSON(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, message string, details map[string]string) error {
	if message == "" {
		message = MsgValidationFailed
	}
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return errorJSON(c, http.StatusBadRequest, CodeValidationError, message)
}

// Conflict writes a 400 Bad Request response for writes that collide with existing data.
func Conflict(c echo.Context, message string) error {
	return errorJSON(c, http.StatusBadRequest, CodeConflict, message)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return errorJSON(c, http.StatusNotFound, CodeNotFound, message)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return errorJSON(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return errorJSON(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return errorJSON(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled)
}

// InternalServerError writes a 500 response that carries the underlying error message.
func InternalServerError(c echo.Context, message string) error {
	return errorJSON(c, http.StatusInternalServerError, CodeInternalError, MsgInternalPrefix+message)
}
