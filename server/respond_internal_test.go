package server

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/logging"
	"github.com/katalvlaran/geotour/tsp"
)

func bufferedServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log, err := logging.New("debug", logging.FormatText, &buf)
	require.NoError(t, err)

	return New(nil, tsp.DefaultOptions(), log), &buf
}

// TestWriteJSON_EncodeFailure answers 500 with a JSON error and logs the cause.
func TestWriteJSON_EncodeFailure(t *testing.T) {
	s, logs := bufferedServer(t)
	rec := httptest.NewRecorder()

	s.writeJSON(rec, http.StatusOK, map[string]float64{"cost": math.NaN()})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	require.Contains(t, logs.String(), "encode response")
}

// failingWriter accepts headers but refuses the body.
type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header       { return w.header }
func (w *failingWriter) WriteHeader(code int)      { w.status = code }
func (w *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

// TestWriteJSON_WriteFailure logs a body that could not be written.
func TestWriteJSON_WriteFailure(t *testing.T) {
	s, logs := bufferedServer(t)
	w := &failingWriter{header: http.Header{}}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	require.Equal(t, http.StatusOK, w.status)
	require.Contains(t, logs.String(), "write response")
	require.Contains(t, logs.String(), "connection reset")
}
