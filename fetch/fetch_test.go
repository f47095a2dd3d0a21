package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	client := NewClient("page-watcher-test/1.0", 5*time.Second)
	body, err := client.Fetch(srv.URL)
	require.NoError(t, err)
	require.Contains(t, string(body), "hello")
	require.Equal(t, "page-watcher-test/1.0", gotAgent)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient("page-watcher-test/1.0", 5*time.Second)
	_, err := client.Fetch(srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), srv.URL)
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient("page-watcher-test/1.0", time.Second)
	_, err := client.Fetch(url)
	require.Error(t, err)
}

func TestFetchSameURLTwice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewClient("page-watcher-test/1.0", 5*time.Second)
	for i := 0; i < 2; i++ {
		body, err := client.Fetch(srv.URL)
		require.NoError(t, err)
		require.Equal(t, "ok", string(body))
	}
}
