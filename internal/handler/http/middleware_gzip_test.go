// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with the request body, or "Hello, World!" without one.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	if len(body) == 0 {
		body = []byte("Hello, World!")
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		requestBody    string
		compressBody   bool
		wantGzipped    bool
		wantBody       string
	}{
		{name: "compress when accepted", acceptEncoding: "gzip", wantGzipped: true, wantBody: "Hello, World!"},
		{name: "plain when not accepted", wantBody: "Hello, World!"},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", wantGzipped: true, wantBody: "Hello, World!"},
		{name: "gzip with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzipped: true, wantBody: "Hello, World!"},
		{name: "only deflate", acceptEncoding: "deflate", wantBody: "Hello, World!"},
		{name: "decompress request body", requestBody: `[{"company_name":"Acme"}]`, compressBody: true, wantBody: `[{"company_name":"Acme"}]`},
		{name: "compressed both ways", acceptEncoding: "gzip", requestBody: "ping", compressBody: true, wantGzipped: true, wantBody: "ping"},
		{name: "plain request body untouched", requestBody: "plain", wantBody: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.requestBody != "" {
				if tt.compressBody {
					body = bytes.NewReader(gzipBytes(t, tt.requestBody))
				} else {
					body = strings.NewReader(tt.requestBody)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.compressBody {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body", decodeError(t, rec).Error)
}

func TestGZip_ImplicitHeaderStillMarksEncoding(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("no explicit header"))
	})).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "no explicit header", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_CompressionRatio(t *testing.T) {
	payload := strings.Repeat(`{"company_name":"Acme","industry":"Tech"},`, 200)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(echoHandler).ServeHTTP(rec, req)

	assert.Less(t, rec.Body.Len(), len(payload)/4)
	assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	const n = 50
	handler := withGZip(echoHandler)

	payloads := make([]string, n)
	bodies := make([][]byte, n)
	recs := make([]*httptest.ResponseRecorder, n)
	for i := range n {
		payloads[i] = strings.Repeat("x", i+1)
		bodies[i] = gzipBytes(t, payloads[i])
		recs[i] = httptest.NewRecorder()
	}

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodies[i]))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			handler.ServeHTTP(recs[i], req)
		}()
	}
	wg.Wait()

	for i := range n {
		assert.Equal(t, payloads[i], gunzip(t, recs[i].Body.Bytes()))
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
