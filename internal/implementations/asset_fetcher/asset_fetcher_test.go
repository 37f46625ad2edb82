package assetfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newOrigin(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"index.html": {"file": "assets/index-abc.js", "css": ["assets/index-abc.css"]},
			"logo.svg": {"file": "assets/logo-def.svg"}
		}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	assert := require.New(t)
	origin := newOrigin(t)
	fetcher := NewHTTP(origin.Client(), origin.URL, "/manifest.json")

	asset, err := fetcher.Fetch(context.Background(), "/index.html")

	assert.Nil(err)
	assert.Equal("/index.html", asset.URL)
	assert.Equal("text/html", asset.ContentType)
	assert.Equal([]byte("<html></html>"), asset.Body)
}

func TestFetchMissingAsset(t *testing.T) {
	origin := newOrigin(t)
	fetcher := NewHTTP(origin.Client(), origin.URL, "/manifest.json")

	_, err := fetcher.Fetch(context.Background(), "/nope.js")

	require.NotNil(t, err)
}

func TestManifest(t *testing.T) {
	assert := require.New(t)
	origin := newOrigin(t)
	fetcher := NewHTTP(origin.Client(), origin.URL, "/manifest.json")

	urls, err := fetcher.Manifest(context.Background())

	assert.Nil(err)
	assert.Equal(
		[]string{"/assets/index-abc.js", "/assets/index-abc.css", "/assets/logo-def.svg"},
		urls,
	)
}
