package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ratel-online/shangdaren/config"
	"github.com/ratel-online/shangdaren/mahjong/game"
	"github.com/ratel-online/shangdaren/render"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps every record as a field of one hash, keyed by session id.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, key: cfg.Key}, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, record game.Record) error {
	data, err := render.Marshal(record)
	if err != nil {
		return err
	}
	if err := r.client.HSet(ctx, r.key, id, data).Err(); err != nil {
		return fmt.Errorf("save game %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) (game.Record, error) {
	record := game.Record{}
	data, err := r.client.HGet(ctx, r.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return record, ErrRecordNotFound
	}
	if err != nil {
		return record, fmt.Errorf("load game %s: %w", id, err)
	}
	err = render.Unmarshal(data, &record)
	return record, err
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.HDel(ctx, r.key, id).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
