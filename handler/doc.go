// Package handler provides typed HTTP handlers.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type ValidateRequest struct {
//	    Value string `json:"value" query:"value"`
//	    Type  string `json:"type" query:"type"`
//	}
//
//	h := func(ctx handler.Context, req ValidateRequest) handler.Response {
//	    return handler.JSON(validator.Validate(req.Value, req.Type))
//	}
//
//	r.Post("/validate", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, ValidateRequest](binder.JSON(), binder.Form()),
//	    handler.WithErrorHandler[handler.Context, ValidateRequest](handler.NewErrorHandler(log)),
//	))
//
// JSON responses share one envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// HTTPError values keep their status code. validator.ValidationErrors
// render as 422 with one details entry per field.
package handler
