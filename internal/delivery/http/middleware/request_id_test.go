package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesAndExposes(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
	})

	handler := RequestID(next)
	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rr.Header().Get("X-Request-ID"))
}

func TestRequestID_HonorsIncomingHeader(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequestIDFromContext(r.Context())
	})

	handler := RequestID(next)
	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, "upstream-id", seen)
	require.Equal(t, "upstream-id", rr.Header().Get("X-Request-ID"))
}
