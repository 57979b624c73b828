package stub

import (
	"log/slog"
	"net/http"

	deliverycontext "jalsetu/internal/delivery/context"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error envelope of the real backend. Clients read detail.
type ErrorBody struct {
	Detail    string `json:"detail"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// errorHandler renders errors the way the scoring backend does.
type errorHandler struct {
	logger *slog.Logger
}

func newErrorHandler(logger *slog.Logger) *errorHandler {
	return &errorHandler{logger: logger}
}

// HandleHTTPError implements echo.HTTPErrorHandler
func (h *errorHandler) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		detail := appErr.Details()
		if detail == "" {
			detail = appErr.Message()
		}
		h.write(c, statusForKind(appErr.Kind()), appErr.ErrorCode(), detail)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		h.write(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	h.write(c, http.StatusInternalServerError, string(domainerrors.KindInternal), "Internal server error")
}

func (h *errorHandler) write(c echo.Context, status int, code, detail string) {
	body := ErrorBody{
		Detail:    detail,
		Code:      code,
		RequestID: deliverycontext.GetRequestID(c),
	}

	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		h.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func statusForKind(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindInvalidInput, domainerrors.KindLocationUnavailable:
		return http.StatusUnprocessableEntity
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindNetwork, domainerrors.KindRemote:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
