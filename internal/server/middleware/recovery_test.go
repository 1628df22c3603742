package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		handler        http.HandlerFunc
		name           string
		expectedBody   string
		expectedStatus int
	}{
		{
			name: "normal handler",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("success"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
		{
			name: "panic with string",
			handler: func(http.ResponseWriter, *http.Request) {
				panic("something went wrong")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal server error",
		},
		{
			name: "nil map write",
			handler: func(http.ResponseWriter, *http.Request) {
				var m map[string]int
				m["x"] = 1
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)

			assert.NotPanics(t, func() {
				RecoveryMiddleware(setupTestLogger())(tt.handler).ServeHTTP(w, req)
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestRecoveryMiddleware_DoesNotLeakPanicValue(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	w := httptest.NewRecorder()
	RecoveryMiddleware(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("secret-key-material")
	})).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/collections/outfits", nil))

	assert.NotContains(t, w.Body.String(), "secret-key-material")
	assert.Contains(t, logs.String(), "panic recovered")
	assert.Contains(t, logs.String(), "stack=")
	assert.Contains(t, logs.String(), "/api/v1/collections/outfits")
}

func TestRecoveryMiddleware_RepanicsAbortHandler(t *testing.T) {
	h := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
