package http

import (
	"errors"
	"fmt"
	"net/http"

	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler maps errs types to status codes. Unexpected errors are logged
// and reported without detail.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := classify(err)
		if resp.Code == http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(resp.Code)
		} else {
			writeErr = c.JSON(resp.Code, resp)
		}
		if writeErr != nil {
			log.Warn("error response not written", zap.Error(writeErr))
		}
	}
}

func classify(err error) ErrorResponse {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return ErrorResponse{Code: he.Code, Error: kindOf(he.Code), Message: fmt.Sprint(he.Message)}
	case errs.IsValidation(err):
		return ErrorResponse{Code: http.StatusBadRequest, Error: "validation", Message: err.Error()}
	case errors.Is(err, errs.ErrPermissionDenied):
		return ErrorResponse{Code: http.StatusForbidden, Error: "permission_denied", Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return ErrorResponse{Code: http.StatusNotFound, Error: "not_found", Message: err.Error()}
	case errors.Is(err, errs.ErrPreconditionFailed):
		return ErrorResponse{Code: http.StatusConflict, Error: "precondition_failed", Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return ErrorResponse{Code: http.StatusConflict, Error: "conflict", Message: err.Error()}
	default:
		return ErrorResponse{
			Code:    http.StatusInternalServerError,
			Error:   "unexpected",
			Message: "unexpected error",
		}
	}
}

func kindOf(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "permission_denied"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	default:
		if status >= http.StatusInternalServerError {
			return "unexpected"
		}
		return "request_failed"
	}
}
