package assetcache

import (
	"context"
	"encoding/json"
	"fmt"
	"ltapp/internal/core/domain/assetcache"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"time"

	"github.com/go-redis/redis/v9"
)

const generationsKey = "ltapp:cache:generations"

func assetsKey(name assetcache.Name) string {
	return fmt.Sprintf("ltapp:cache:assets:%s", name)
}

type generationRecord struct {
	Assets    []string  `json:"assets"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type assetRecord struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Redis stores generation metadata in one hash keyed by generation name
// and the cached asset bodies in one hash per generation.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
}

func NewRedis(redisClient *redis.Client, log logging.Logger) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log}
}

func (r *Redis) Create(ctx context.Context, g assetcache.Generation) error {
	encoded, err := json.Marshal(generationRecord{
		Assets:    g.Assets,
		Status:    g.Status.String(),
		CreatedAt: g.CreatedAt,
	})
	if err != nil {
		return err
	}
	return r.redisClient.HSet(ctx, generationsKey, string(g.Name), encoded).Err()
}

func (r *Redis) SetStatus(ctx context.Context, name assetcache.Name, status assetcache.Status) error {
	g, err := r.get(ctx, name)
	if err != nil {
		return err
	}
	g.Status = status
	return r.Create(ctx, g)
}

func (r *Redis) List(ctx context.Context) ([]assetcache.Generation, error) {
	encoded, err := r.redisClient.HGetAll(ctx, generationsKey).Result()
	if err != nil {
		return nil, err
	}
	generations := make([]assetcache.Generation, 0, len(encoded))
	for name, raw := range encoded {
		g, err := r.decode(ctx, assetcache.Name(name), raw)
		if err != nil {
			continue
		}
		generations = append(generations, g)
	}
	return generations, nil
}

func (r *Redis) Delete(ctx context.Context, name assetcache.Name) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, generationsKey, string(name))
		pipe.Del(ctx, assetsKey(name))
		return nil
	})
	return err
}

func (r *Redis) Active(ctx context.Context) (assetcache.Generation, error) {
	generations, err := r.List(ctx)
	if err != nil {
		return assetcache.Generation{}, err
	}
	for _, g := range generations {
		if g.Status == assetcache.StatusActive {
			return g, nil
		}
	}
	return assetcache.Generation{}, assetcache.ErrNoActiveGeneration
}

func (r *Redis) PutAsset(ctx context.Context, name assetcache.Name, asset assetcache.Asset) error {
	encoded, err := json.Marshal(assetRecord{ContentType: asset.ContentType, Body: asset.Body})
	if err != nil {
		return err
	}
	return r.redisClient.HSet(ctx, assetsKey(name), asset.URL, encoded).Err()
}

func (r *Redis) GetAsset(ctx context.Context, name assetcache.Name, url string) (assetcache.Asset, error) {
	encoded, err := r.redisClient.HGet(ctx, assetsKey(name), url).Result()
	if err == redis.Nil {
		return assetcache.Asset{}, assetcache.ErrAssetNotCached
	}
	if err != nil {
		return assetcache.Asset{}, err
	}
	var record assetRecord
	if err := json.Unmarshal([]byte(encoded), &record); err != nil {
		return assetcache.Asset{}, err
	}
	return assetcache.Asset{URL: url, ContentType: record.ContentType, Body: record.Body}, nil
}

func (r *Redis) get(ctx context.Context, name assetcache.Name) (assetcache.Generation, error) {
	raw, err := r.redisClient.HGet(ctx, generationsKey, string(name)).Result()
	if err == redis.Nil {
		return assetcache.Generation{}, assetcache.ErrGenerationDoesNotExist
	}
	if err != nil {
		return assetcache.Generation{}, err
	}
	return r.decode(ctx, name, raw)
}

func (r *Redis) decode(ctx context.Context, name assetcache.Name, raw string) (assetcache.Generation, error) {
	var record generationRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		r.log.Warning(
			ctx,
			"Skipping corrupt cache generation record.",
			logging.Entry("name", name),
		)
		return assetcache.Generation{}, err
	}
	status, err := assetcache.ParseStatus(record.Status)
	if err != nil {
		return assetcache.Generation{}, err
	}
	return assetcache.Generation{
		Name:      name,
		Assets:    record.Assets,
		Status:    status,
		CreatedAt: record.CreatedAt,
	}, nil
}
