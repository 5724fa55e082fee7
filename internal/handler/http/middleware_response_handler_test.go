package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "implicit 200", writes: []string{"hello"}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit status", header: http.StatusCreated, writes: []string{"{}"}, wantStatus: http.StatusCreated, wantSize: 2},
		{name: "size accumulates", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "header only", header: http.StatusNoContent, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := &responseWriter{ResponseWriter: rec}

			if tt.header != 0 {
				rw.WriteHeader(tt.header)
			}
			for _, w := range tt.writes {
				rw.Write([]byte(w))
			}

			assert.Equal(t, tt.wantStatus, rw.status)
			assert.Equal(t, tt.wantSize, rw.size)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, rw.Unwrap())
}
