package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	const body = "id,question,choiceA,choiceB,answer\n1,Q,a,b,A\n"

	t.Run("http", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/question_bank.csv" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		got, err := New().Fetch(context.Background(), server.URL+"/question_bank.csv")
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("http status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := New().Fetch(context.Background(), server.URL+"/missing.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("any 2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		got, err := New().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("size cap", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		_, err := New(WithMaxSize(10)).Fetch(context.Background(), server.URL)
		assert.ErrorIs(t, err, ErrTooLarge)

		got, err := New(WithMaxSize(int64(len(body)))).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		_, err := New(WithTimeout(20*time.Millisecond)).Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "question_bank.csv")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		got, err := New().Fetch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrNoSource)
	})
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("http://example.com/a.csv"))
	assert.True(t, isURL("HTTPS://example.com/a.csv"))
	assert.False(t, isURL("question_bank.csv"))
	assert.False(t, isURL("/tmp/http.csv"))
}
