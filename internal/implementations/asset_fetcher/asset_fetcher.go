package assetfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"ltapp/internal/core/domain/assetcache"
	e "ltapp/internal/core/domain/errors"
	"net/http"
	"sort"
	"strings"
)

type manifestChunk struct {
	File string   `json:"file"`
	CSS  []string `json:"css"`
}

// HTTP fetches static assets from the origin the app shell is built
// and served from.
type HTTP struct {
	client       *http.Client
	originURL    string
	manifestPath string
}

func NewHTTP(client *http.Client, originURL string, manifestPath string) *HTTP {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if originURL == "" {
		panic(e.NewNilArgumentError("originURL"))
	}
	return &HTTP{
		client:       client,
		originURL:    strings.TrimRight(originURL, "/"),
		manifestPath: manifestPath,
	}
}

func (f *HTTP) Fetch(ctx context.Context, url string) (assetcache.Asset, error) {
	body, contentType, err := f.get(ctx, url)
	if err != nil {
		return assetcache.Asset{}, err
	}
	return assetcache.Asset{URL: url, ContentType: contentType, Body: body}, nil
}

// Manifest reads the build manifest and returns the URLs of the chunks
// it names, entry files first, then their stylesheets.
func (f *HTTP) Manifest(ctx context.Context) ([]string, error) {
	body, _, err := f.get(ctx, f.manifestPath)
	if err != nil {
		return nil, err
	}

	chunks := make(map[string]manifestChunk)
	if err := json.Unmarshal(body, &chunks); err != nil {
		return nil, fmt.Errorf("decode build manifest: %w", err)
	}

	keys := make([]string, 0, len(chunks))
	for key := range chunks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	urls := make([]string, 0, len(chunks))
	for _, key := range keys {
		chunk := chunks[key]
		if chunk.File != "" {
			urls = append(urls, assetURL(chunk.File))
		}
		for _, css := range chunk.CSS {
			urls = append(urls, assetURL(css))
		}
	}
	return urls, nil
}

func (f *HTTP) get(ctx context.Context, path string) (body []byte, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.originURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func assetURL(file string) string {
	if strings.HasPrefix(file, "/") {
		return file
	}
	return "/" + file
}
