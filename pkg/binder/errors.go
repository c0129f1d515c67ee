package binder

import "errors"

var (
	// ErrBinderNotApplicable marks a binder that has nothing to read from the
	// request, e.g. a JSON binder on a form post. Callers chaining binders
	// skip it and move on.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
)
