package assetcache

import (
	"context"
	"sync"
)

type FakeRepository struct {
	CreateError    error
	SetStatusError error
	ListError      error
	DeleteError    error
	PutAssetError  error

	Generations []Generation
	AssetsByGen map[Name]map[string]Asset
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{AssetsByGen: make(map[Name]map[string]Asset)}
}

func (r *FakeRepository) Create(ctx context.Context, g Generation) error {
	if r.CreateError != nil {
		return r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Generations = append(r.Generations, g)
	return nil
}

func (r *FakeRepository) SetStatus(ctx context.Context, name Name, status Status) error {
	if r.SetStatusError != nil {
		return r.SetStatusError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Generations {
		if r.Generations[ix].Name == name {
			r.Generations[ix].Status = status
			return nil
		}
	}
	return ErrGenerationDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context) ([]Generation, error) {
	if r.ListError != nil {
		return nil, r.ListError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	generations := make([]Generation, len(r.Generations))
	copy(generations, r.Generations)
	return generations, nil
}

func (r *FakeRepository) Delete(ctx context.Context, name Name) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	generations := r.Generations[:0]
	for _, g := range r.Generations {
		if g.Name != name {
			generations = append(generations, g)
		}
	}
	r.Generations = generations
	delete(r.AssetsByGen, name)
	return nil
}

func (r *FakeRepository) Active(ctx context.Context) (Generation, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, g := range r.Generations {
		if g.Status == StatusActive {
			return g, nil
		}
	}
	return Generation{}, ErrNoActiveGeneration
}

func (r *FakeRepository) PutAsset(ctx context.Context, name Name, asset Asset) error {
	if r.PutAssetError != nil {
		return r.PutAssetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	assets, ok := r.AssetsByGen[name]
	if !ok {
		assets = make(map[string]Asset)
		r.AssetsByGen[name] = assets
	}
	assets[asset.URL] = asset
	return nil
}

func (r *FakeRepository) GetAsset(ctx context.Context, name Name, url string) (Asset, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	asset, ok := r.AssetsByGen[name][url]
	if !ok {
		return Asset{}, ErrAssetNotCached
	}
	return asset, nil
}

type FakeFetcher struct {
	FetchErrors   map[string]error
	ManifestError error
	Assets        map[string]Asset
	ManifestURLs  []string
	Fetched       []string
	lock          sync.Mutex
}

func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		FetchErrors: make(map[string]error),
		Assets:      make(map[string]Asset),
	}
}

func (f *FakeFetcher) Fetch(ctx context.Context, url string) (Asset, error) {
	f.lock.Lock()
	f.Fetched = append(f.Fetched, url)
	f.lock.Unlock()
	if err := f.FetchErrors[url]; err != nil {
		return Asset{}, err
	}
	asset, ok := f.Assets[url]
	if !ok {
		return Asset{URL: url, ContentType: "text/plain", Body: []byte(url)}, nil
	}
	return asset, nil
}

func (f *FakeFetcher) Manifest(ctx context.Context) ([]string, error) {
	if f.ManifestError != nil {
		return nil, f.ManifestError
	}
	return f.ManifestURLs, nil
}
