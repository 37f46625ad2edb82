package reminder

import "context"

// Store is the durable entity-id -> target-time map, the sole source of
// truth across restarts. Live timer handles are derived from it and are
// never persisted.
type Store interface {
	Set(ctx context.Context, entityID EntityID, at TimeOfDay) error
	Remove(ctx context.Context, entityID EntityID) error
	Clear(ctx context.Context) error
	ReadAll(ctx context.Context) (map[EntityID]TimeOfDay, error)
}
