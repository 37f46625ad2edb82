package reminderstore

import (
	"context"
	"encoding/json"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"

	"github.com/go-redis/redis/v9"
)

const storeKey = "ltapp:reminders"

// Redis persists the reminder map as a single JSON object under one
// key, entity id -> "HH:MM". Labels are not persisted; after a restart
// the rebuild pass re-arms with the entity id as the label.
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

func (r *Redis) Set(ctx context.Context, entityID reminder.EntityID, at reminder.TimeOfDay) error {
	return r.update(ctx, func(entries map[string]string) {
		entries[string(entityID)] = at.String()
	})
}

func (r *Redis) Remove(ctx context.Context, entityID reminder.EntityID) error {
	return r.update(ctx, func(entries map[string]string) {
		delete(entries, string(entityID))
	})
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.redisClient.Del(ctx, storeKey).Err()
}

func (r *Redis) ReadAll(ctx context.Context) (map[reminder.EntityID]reminder.TimeOfDay, error) {
	entries, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[reminder.EntityID]reminder.TimeOfDay, len(entries))
	for entityID, rawAt := range entries {
		at, err := reminder.ParseTimeOfDay(rawAt)
		if err != nil {
			// A corrupt entry must not poison the whole map.
			r.log.Warning(
				ctx,
				"Skipping persisted reminder with invalid time of day.",
				logging.Entry("entityID", entityID),
				logging.Entry("at", rawAt),
			)
			continue
		}
		result[reminder.EntityID(entityID)] = at
	}
	return result, nil
}

func (r *Redis) update(ctx context.Context, mutate func(entries map[string]string)) error {
	return r.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		entries := make(map[string]string)
		encoded, err := tx.Get(ctx, storeKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if err == nil {
			if err := json.Unmarshal([]byte(encoded), &entries); err != nil {
				r.log.Warning(ctx, "Persisted reminder map is corrupt, resetting.")
				entries = make(map[string]string)
			}
		}

		mutate(entries)

		updated, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, storeKey, updated, 0)
			return nil
		})
		return err
	}, storeKey)
}

func (r *Redis) read(ctx context.Context) (map[string]string, error) {
	encoded, err := r.redisClient.Get(ctx, storeKey).Result()
	if err == redis.Nil {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	entries := make(map[string]string)
	if err := json.Unmarshal([]byte(encoded), &entries); err != nil {
		r.log.Warning(ctx, "Persisted reminder map is corrupt, treating as empty.")
		return map[string]string{}, nil
	}
	return entries, nil
}
