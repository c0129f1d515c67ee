package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory caps memory used when parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds urlencoded or multipart form values into fields tagged
// `form:"name"`. Only body values are read; query parameters are left to
// Query. Uploaded files are ignored. Other content types report
// ErrBinderNotApplicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt := MediaType(r)
		switch {
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
		case mt == "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
		default:
			return fmt.Errorf("%w: %w: got %q, expected a form content type", ErrBinderNotApplicable, ErrUnsupportedMediaType, mt)
		}
		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
