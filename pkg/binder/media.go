package binder

import (
	"mime"
	"net/http"
	"strings"
)

// MediaType returns the lower-cased media type of the request body without
// parameters, or "" when the header is missing or malformed.
func MediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}
