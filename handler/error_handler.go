package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fieldcheck/pkg/binder"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

var bindErrors = []error{
	binder.ErrFailedToParseJSON,
	binder.ErrFailedToParseForm,
	binder.ErrFailedToParseQuery,
	binder.ErrFailedToParsePath,
}

// classifyError maps err to the status and envelope rendered to the client.
func classifyError(err error) (int, *ErrorDetail) {
	for _, target := range bindErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, &ErrorDetail{
				Code:    ErrBadRequest.Key,
				Message: err.Error(),
			}
		}
	}
	if errors.Is(err, binder.ErrUnsupportedMediaType) {
		return http.StatusUnsupportedMediaType, &ErrorDetail{
			Code:    ErrUnsupportedMediaType.Key,
			Message: err.Error(),
		}
	}

	status := http.StatusInternalServerError
	detail := errorToDetail(err, &status)
	if status >= http.StatusInternalServerError {
		// Internal error text stays in the logs.
		detail.Message = http.StatusText(status)
	}
	return status, detail
}

// NewErrorHandler returns an ErrorHandler that logs the failure and renders it as a JSON error envelope. Client errors log at
// warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, detail := classifyError(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		resp := JSONError(detail, WithJSONStatus(status))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
