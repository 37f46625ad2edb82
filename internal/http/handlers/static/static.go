package static

import (
	"context"
	"errors"
	"ltapp/internal/core/domain/assetcache"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"net/http"
	"strings"
)

// Handler serves the app shell and its static assets. Navigations are
// network-first with the cached shell as the offline fallback; assets
// are cache-first with a network fallback that opportunistically fills
// the active generation.
type Handler struct {
	log        logging.Logger
	repository assetcache.Repository
	fetcher    assetcache.Fetcher
	shellPath  string
}

func New(
	log logging.Logger,
	repository assetcache.Repository,
	fetcher assetcache.Fetcher,
	shellPath string,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if fetcher == nil {
		panic(e.NewNilArgumentError("fetcher"))
	}
	if shellPath == "" {
		panic("shellPath must not be empty")
	}
	return &Handler{log: log, repository: repository, fetcher: fetcher, shellPath: shellPath}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if isNavigation(r) {
		h.serveNavigation(rw, r)
		return
	}
	h.serveAsset(rw, r)
}

func (h *Handler) serveNavigation(rw http.ResponseWriter, r *http.Request) {
	asset, err := h.fetcher.Fetch(r.Context(), h.shellPath)
	if err == nil {
		render(rw, asset)
		return
	}
	h.log.Warning(
		r.Context(),
		"Origin unreachable, falling back to the cached shell.",
		logging.Entry("err", err.Error()),
	)

	cached, err := h.cachedAsset(r.Context(), h.shellPath)
	if err != nil {
		http.Error(rw, "offline and no cached shell", http.StatusServiceUnavailable)
		return
	}
	render(rw, cached)
}

func (h *Handler) serveAsset(rw http.ResponseWriter, r *http.Request) {
	url := r.URL.Path
	cached, err := h.cachedAsset(r.Context(), url)
	if err == nil {
		render(rw, cached)
		return
	}

	fetched, err := h.fetcher.Fetch(r.Context(), url)
	if err != nil {
		http.NotFound(rw, r)
		return
	}
	h.fillCache(r.Context(), fetched)
	render(rw, fetched)
}

func (h *Handler) cachedAsset(ctx context.Context, url string) (assetcache.Asset, error) {
	active, err := h.repository.Active(ctx)
	if err != nil {
		return assetcache.Asset{}, err
	}
	return h.repository.GetAsset(ctx, active.Name, url)
}

// fillCache stores a fetched asset in the active generation so the next
// request is served offline. Failing to fill is not an error for the
// request in flight.
func (h *Handler) fillCache(ctx context.Context, asset assetcache.Asset) {
	active, err := h.repository.Active(ctx)
	if errors.Is(err, assetcache.ErrNoActiveGeneration) {
		return
	}
	if err != nil {
		logging.Error(ctx, h.log, err)
		return
	}
	if err := h.repository.PutAsset(ctx, active.Name, asset); err != nil {
		logging.Error(ctx, h.log, err, logging.Entry("url", asset.URL))
	}
}

func isNavigation(r *http.Request) bool {
	if r.URL.Path == "/" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func render(rw http.ResponseWriter, asset assetcache.Asset) {
	if asset.ContentType != "" {
		rw.Header().Set("Content-Type", asset.ContentType)
	}
	rw.WriteHeader(http.StatusOK)
	rw.Write(asset.Body)
}
