package binder

import (
	"fmt"
	"net/http"
)

// Path binds route parameters into fields tagged `path:"name"` using the
// router's extractor, e.g. chi.URLParam. Fields without a path tag are left
// alone so Path can be chained with other binders.
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}
		return bindTagged(v, "path", ErrFailedToParsePath, func(name string) []string {
			if val := extractor(r, name); val != "" {
				return []string{val}
			}
			return nil
		})
	}
}
