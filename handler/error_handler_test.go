package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/handler"
	"github.com/dmitrymomot/fieldcheck/pkg/binder"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		level  string
	}{
		{
			name:   "bind failure",
			err:    fmt.Errorf("%w: empty body", binder.ErrFailedToParseJSON),
			status: http.StatusBadRequest,
			code:   "bad_request",
			level:  "WARN",
		},
		{
			name:   "unsupported media type",
			err:    fmt.Errorf("%w: text/plain", binder.ErrUnsupportedMediaType),
			status: http.StatusUnsupportedMediaType,
			code:   "unsupported_media_type",
			level:  "WARN",
		},
		{
			name:   "http error",
			err:    handler.ErrNotFound,
			status: http.StatusNotFound,
			code:   "not_found",
			level:  "WARN",
		},
		{
			name:   "internal",
			err:    errors.New("db password leaked"),
			status: http.StatusInternalServerError,
			code:   "internal_error",
			level:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs bytes.Buffer
			log := logger.New(logger.WithOutput(&logs), logger.WithContextExtractors(requestid.LoggerExtractor()))

			req := httptest.NewRequest(http.MethodPost, "/validate", nil)
			req = req.WithContext(requestid.WithContext(req.Context(), "req-42"))
			rec := httptest.NewRecorder()

			handler.NewErrorHandler(log)(handler.NewContext(rec, req), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "password")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "req-42", entry["request_id"])
			assert.Equal(t, float64(tt.status), entry["status_code"])
			assert.Equal(t, "/validate", entry["path"])
		})
	}
}
