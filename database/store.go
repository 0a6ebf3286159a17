package database

import (
	"context"
	"errors"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/shangdaren/mahjong/game"
	"github.com/ratel-online/shangdaren/render"
)

var ErrRecordNotFound = errors.New("game record not found")

// Store keeps the full game of a session so that it survives a restart.
type Store interface {
	Save(ctx context.Context, id string, record game.Record) error
	Load(ctx context.Context, id string) (game.Record, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps encoded records in process.
type MemoryStore struct {
	set func(id string, data []byte)
	get func(id string) ([]byte, bool)
	del func(id string)
}

func NewMemoryStore() *MemoryStore {
	records := hashmap.New()
	return &MemoryStore{
		set: func(id string, data []byte) { records.Set(id, data) },
		get: func(id string) ([]byte, bool) {
			if v, ok := records.Get(id); ok {
				return v.([]byte), true
			}
			return nil, false
		},
		del: func(id string) { records.Del(id) },
	}
}

func (m *MemoryStore) Save(_ context.Context, id string, record game.Record) error {
	data, err := render.Marshal(record)
	if err != nil {
		return err
	}
	m.set(id, data)
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (game.Record, error) {
	record := game.Record{}
	data, ok := m.get(id)
	if !ok {
		return record, ErrRecordNotFound
	}
	err := render.Unmarshal(data, &record)
	return record, err
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.del(id)
	return nil
}
