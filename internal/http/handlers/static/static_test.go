package static

import (
	"context"
	"errors"
	"ltapp/internal/core/domain/assetcache"
	"ltapp/internal/core/domain/logging"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC)

func newActiveGeneration(t *testing.T, repository *assetcache.FakeRepository) assetcache.Name {
	t.Helper()
	name := assetcache.NewName(Now)
	err := repository.Create(context.Background(), assetcache.Generation{
		Name:      name,
		Status:    assetcache.StatusActive,
		CreatedAt: Now,
	})
	require.Nil(t, err)
	return name
}

func TestNavigationPrefersNetwork(t *testing.T) {
	assert := require.New(t)
	repository := assetcache.NewFakeRepository()
	fetcher := assetcache.NewFakeFetcher()
	fetcher.Assets["/index.html"] = assetcache.Asset{
		URL:         "/index.html",
		ContentType: "text/html",
		Body:        []byte("fresh shell"),
	}
	handler := New(logging.NewFakeLogger(), repository, fetcher, "/index.html")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("fresh shell", rec.Body.String())
}

func TestNavigationFallsBackToCachedShell(t *testing.T) {
	assert := require.New(t)
	repository := assetcache.NewFakeRepository()
	name := newActiveGeneration(t, repository)
	err := repository.PutAsset(context.Background(), name, assetcache.Asset{
		URL:         "/index.html",
		ContentType: "text/html",
		Body:        []byte("cached shell"),
	})
	assert.Nil(err)

	fetcher := assetcache.NewFakeFetcher()
	fetcher.FetchErrors["/index.html"] = errors.New("origin is down")
	handler := New(logging.NewFakeLogger(), repository, fetcher, "/index.html")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("cached shell", rec.Body.String())
}

func TestNavigationOfflineWithoutCache(t *testing.T) {
	repository := assetcache.NewFakeRepository()
	fetcher := assetcache.NewFakeFetcher()
	fetcher.FetchErrors["/index.html"] = errors.New("origin is down")
	handler := New(logging.NewFakeLogger(), repository, fetcher, "/index.html")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAssetServedFromCache(t *testing.T) {
	assert := require.New(t)
	repository := assetcache.NewFakeRepository()
	name := newActiveGeneration(t, repository)
	err := repository.PutAsset(context.Background(), name, assetcache.Asset{
		URL:         "/assets/app.js",
		ContentType: "application/javascript",
		Body:        []byte("cached js"),
	})
	assert.Nil(err)

	fetcher := assetcache.NewFakeFetcher()
	handler := New(logging.NewFakeLogger(), repository, fetcher, "/index.html")

	req := httptest.NewRequest(http.MethodGet, "/assets/app.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("cached js", rec.Body.String())
	assert.Empty(fetcher.Fetched)
}

func TestAssetMissFetchesAndFillsCache(t *testing.T) {
	assert := require.New(t)
	repository := assetcache.NewFakeRepository()
	name := newActiveGeneration(t, repository)
	fetcher := assetcache.NewFakeFetcher()
	handler := New(logging.NewFakeLogger(), repository, fetcher, "/index.html")

	req := httptest.NewRequest(http.MethodGet, "/assets/app.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal([]string{"/assets/app.js"}, fetcher.Fetched)

	filled, err := repository.GetAsset(context.Background(), name, "/assets/app.js")
	assert.Nil(err)
	assert.Equal("/assets/app.js", filled.URL)
}

func TestAssetMissOffline(t *testing.T) {
	repository := assetcache.NewFakeRepository()
	newActiveGeneration(t, repository)
	fetcher := assetcache.NewFakeFetcher()
	fetcher.FetchErrors["/assets/app.js"] = errors.New("origin is down")
	handler := New(logging.NewFakeLogger(), repository, fetcher, "/index.html")

	req := httptest.NewRequest(http.MethodGet, "/assets/app.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
