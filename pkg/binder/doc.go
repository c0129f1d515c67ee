// Package binder fills request structs from HTTP request data.
//
// Each binder reads one source and only touches fields tagged for it:
//
//	type ValidateRequest struct {
//	    Value string `json:"value" form:"value" query:"value"`
//	    Type  string `json:"type"  form:"type"  query:"type"`
//	}
//
// JSON decodes application/json bodies strictly. Form reads urlencoded and
// multipart body values. Query reads the URL query string. Path reads route
// parameters through a router-specific extractor such as chi.URLParam.
//
// Body binders return an error wrapping ErrBinderNotApplicable when the
// request carries a different content type, so several of them can be
// chained and the first matching one wins.
package binder
