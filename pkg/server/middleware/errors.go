package middleware

import (
	"errors"
	"fmt"
	"net/http"

	logging "github.com/ipfs/go-log/v2"
	"github.com/labstack/echo/v4"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

var log = logging.Logger("server/middleware")

// ErrorHandler is a centralized error handler for all Echo routes.
// Set this as Echo's HTTPErrorHandler to automatically handle all errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := extractErrorInfo(err)
	if code >= http.StatusInternalServerError {
		// Full detail stays in the log; the caller sees only the category.
		log.Errorw("request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err)
	}
	sendErrorResponse(c, code, message)
}

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// kindStatusMap maps gateway error kinds to HTTP status codes. Kinds not
// listed here are internal failures and must not leak detail to the caller.
var kindStatusMap = map[types.Kind]int{
	types.KindNotFound:     http.StatusNotFound,
	types.KindInvalidInput: http.StatusBadRequest,
}

func extractErrorInfo(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%s", he.Message)
	}

	var tErr *types.Error
	if errors.As(err, &tErr) {
		if status, ok := kindStatusMap[tErr.Kind()]; ok {
			return status, tErr.Error()
		}
	}

	return http.StatusInternalServerError, "internal error"
}

func sendErrorResponse(c echo.Context, code int, message string) {
	if err := c.JSON(code, ErrorResponse{Error: message}); err != nil {
		log.Errorw("failed to send error response", "error", err)
	}
}
