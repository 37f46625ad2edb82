package assetcache

import "context"

// Repository stores cache generations and their asset bodies in the
// durable store shared by both contexts.
type Repository interface {
	Create(ctx context.Context, g Generation) error
	SetStatus(ctx context.Context, name Name, status Status) error
	List(ctx context.Context) ([]Generation, error)
	Delete(ctx context.Context, name Name) error
	Active(ctx context.Context) (Generation, error)

	PutAsset(ctx context.Context, name Name, asset Asset) error
	GetAsset(ctx context.Context, name Name, url string) (Asset, error)
}

// Fetcher retrieves assets from the origin the app shell is served
// from. Manifest lists the asset URLs named by the build manifest; its
// absence is tolerated.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Asset, error)
	Manifest(ctx context.Context) ([]string, error)
}
