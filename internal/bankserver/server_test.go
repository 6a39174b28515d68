package bankserver

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/bank"
)

type staticSource bank.Bank

func (s staticSource) Bank() bank.Bank { return bank.Bank(s).Clone() }

func get(t *testing.T, h http.Handler, path string) *http.Response {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestServer_CSV(t *testing.T) {
	b := bank.Sample()
	resp := get(t, NewServer(staticSource(b)).Handler(nil), CSVPath)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	got, err := bank.LoadText(string(body))
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestServer_JSON(t *testing.T) {
	b := bank.Sample()
	resp := get(t, NewServer(staticSource(b)).Handler(nil), JSONPath)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	got, err := bank.LoadJSON(body)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestServer_UnknownPath(t *testing.T) {
	resp := get(t, NewServer(staticSource(bank.Sample())).Handler(nil), "/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	server := httptest.NewServer(NewServer(staticSource(bank.Sample())).Handler(nil))
	defer server.Close()

	resp, err := http.Post(server.URL+CSVPath, "text/plain", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_AccessLogAndCORS(t *testing.T) {
	var logs bytes.Buffer
	h := NewServer(staticSource(bank.Sample())).Handler(&logs)

	req := httptest.NewRequest(http.MethodGet, CSVPath, nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, logs.String(), "GET "+CSVPath)
}
