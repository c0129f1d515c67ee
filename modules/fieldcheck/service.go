package fieldcheck

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldcheck/handler"
	"github.com/dmitrymomot/fieldcheck/pkg/binder"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Service exposes the validator over HTTP.
type Service struct {
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates a Service. A nil logger discards output and a nil
// errorHandler defaults to handler.NewErrorHandler.
func NewService(log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("fieldcheck"))
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log)
	}
	return &Service{log: log, errorHandler: errorHandler}
}

// Handle returns the service router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.NotFound(s.renderError(handler.ErrNotFound))
	r.MethodNotAllowed(s.renderError(handler.ErrMethodNotAllowed))

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](
			requireFormOrJSON,
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))
	r.Get("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	r.Get("/types", handler.Wrap(s.listTypes,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/types/{type}", handler.Wrap(s.describeType,
		handler.WithBinders[handler.Context, TypeRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, TypeRequest](s.errorHandler),
	))

	return r
}

// ValidateRequest carries one value and the tag to check it against.
type ValidateRequest struct {
	Value string `json:"value" form:"value" query:"value"`
	Type  string `json:"type" form:"type" query:"type"`
}

// TypeRequest selects a single tag by path.
type TypeRequest struct {
	Type string `path:"type"`
}

// TypeInfo describes a supported tag.
type TypeInfo struct {
	Type    validator.Type `json:"type"`
	Message string         `json:"message"`
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	start := time.Now()
	res := validator.Validate(req.Value, req.Type)

	s.log.DebugContext(ctx, "field validated",
		logger.FieldType(req.Type),
		logger.Valid(res.Valid),
		logger.Duration(time.Since(start)),
	)

	return handler.JSON(res)
}

func (s *Service) listTypes(handler.Context, struct{}) handler.Response {
	types := validator.Types()
	infos := make([]TypeInfo, 0, len(types))
	for _, t := range types {
		infos = append(infos, TypeInfo{Type: t, Message: t.Message()})
	}
	return handler.JSON(infos, handler.WithJSONMeta(map[string]any{"count": len(infos)}))
}

func (s *Service) describeType(_ handler.Context, req TypeRequest) handler.Response {
	t, err := validator.ParseType(req.Type)
	if err != nil {
		return handler.JSONError(&handler.ErrorDetail{
			Code:    handler.ErrNotFound.Key,
			Message: validator.UnknownTypeMessage,
		}, handler.WithJSONStatus(http.StatusNotFound))
	}
	return handler.JSON(TypeInfo{Type: t, Message: t.Message()})
}

func (s *Service) renderError(err handler.HTTPError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if renderErr := handler.JSONError(err).Render(w, r); renderErr != nil {
			s.log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}

// requireFormOrJSON rejects POST bodies no other binder can read, so a
// text/plain post is a 415 rather than an empty validation.
func requireFormOrJSON(r *http.Request, _ any) error {
	switch binder.MediaType(r) {
	case "application/json", "application/x-www-form-urlencoded", "multipart/form-data":
		return fmt.Errorf("%w: content type accepted", binder.ErrBinderNotApplicable)
	}
	return fmt.Errorf("%w: got %q, expected application/json or a form", binder.ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
}
