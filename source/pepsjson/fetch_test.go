package pepsjson

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_DownloadsAndCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(sampleIndex))
	}))
	defer srv.Close()

	cachePath := filepath.Join(t.TempDir(), "peps.json")

	records, err := Fetch(context.Background(), srv.Client(), srv.URL, cachePath)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 1, hits)

	// Cached content is served without contacting the server again.
	records, err = Fetch(context.Background(), srv.Client(), srv.URL, cachePath)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 1, hits)
}

func TestFetch_ServerErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cachePath := filepath.Join(t.TempDir(), "peps.json")
	_, err := Fetch(context.Background(), srv.Client(), srv.URL, cachePath)
	require.Error(t, err)

	// A failed fetch leaves no cache behind.
	_, statErr := os.Stat(cachePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
