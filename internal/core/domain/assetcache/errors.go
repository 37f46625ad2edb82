package assetcache

import "errors"

var (
	ErrGenerationDoesNotExist = errors.New("cache generation does not exist")
	ErrNoActiveGeneration     = errors.New("no active cache generation")
	ErrAssetNotCached         = errors.New("asset is not cached")
)
