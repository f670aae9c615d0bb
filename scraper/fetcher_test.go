package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccess(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>page</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(DefaultFetchTimeout)
	status, body, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, FetchSuccess, status)
	assert.Equal(t, []byte("<html>page</html>"), body)
	assert.Contains(t, gotUA, "Chrome")
	assert.Equal(t, "en-US,en;q=0.9", gotLang)
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(DefaultFetchTimeout)
	status, body, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, FetchNotFound, status)
	assert.Nil(t, body)
}

func TestFetchServerErrorIsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(DefaultFetchTimeout)
	status, _, err := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, FetchFailed, status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	f := NewFetcher(time.Second)
	status, _, err := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, FetchFailed, status)
	require.Error(t, err)
}
