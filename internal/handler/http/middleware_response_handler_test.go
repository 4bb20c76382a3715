package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	tests := []struct {
		name       string
		headers    []int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "nothing written", wantStatus: http.StatusOK},
		{name: "implicit 200 on write", writes: []string{`{"success":true}`}, wantStatus: http.StatusOK, wantSize: 16},
		{name: "401 with body", headers: []int{http.StatusUnauthorized}, writes: []string{`{"error":"x"}`}, wantStatus: http.StatusUnauthorized, wantSize: 13},
		{name: "second WriteHeader ignored", headers: []int{http.StatusBadRequest, http.StatusInternalServerError}, wantStatus: http.StatusBadRequest},
		{name: "writes accumulate", writes: []string{"ab", "cde"}, wantStatus: http.StatusOK, wantSize: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.headers {
				w.WriteHeader(code)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
			if len(tt.headers) > 0 || len(tt.writes) > 0 {
				assert.Equal(t, tt.wantStatus, rr.Code)
			}
		})
	}
}

// Flush должен доходить до исходного writer через Unwrap
func TestResponseWriter_UnwrapReachesUnderlyingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
