package database

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/shangdaren/consts"
	"github.com/ratel-online/shangdaren/mahjong/game"
)

var sessions = hashmap.New()
var store Store = NewMemoryStore()
var hooks []func(*Session)

func init() {
	async.Async(func() {
		for {
			time.Sleep(consts.SessionSweepInterval)
			for _, s := range GetSessions() {
				sessionCancel(s)
			}
		}
	})
}

func SetStore(s Store) {
	store = s
}

func GetStore() Store {
	return store
}

// AddSessionHook runs h on every session created or restored from now on.
func AddSessionHook(h func(*Session)) {
	hooks = append(hooks, h)
}

func register(s *Session) {
	for _, h := range hooks {
		h(s)
	}
	sessions.Set(s.ID, s)
}

func CreateSession(g *game.Game) *Session {
	s := newSession(uuid.NewString(), g)
	register(s)
	log.Infof("session %s created\n", s.ID)
	return s
}

func GetSession(id string) *Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

// ResumeSession finds a live session, or rebuilds it from the store.
func ResumeSession(ctx context.Context, id string) (*Session, error) {
	if s := GetSession(id); s != nil {
		return s, nil
	}
	record, err := store.Load(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, consts.ErrorsSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	s := newSession(id, game.Restore(record, nil))
	if v, loaded := sessions.Get(id); loaded {
		return v.(*Session), nil
	}
	register(s)
	log.Infof("session %s restored from store\n", id)
	return s, nil
}

func GetSessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ActiveTime.Before(list[j].ActiveTime)
	})
	return list
}

// Save writes the session's game to the store. Callers hold the session lock.
func Save(ctx context.Context, s *Session) error {
	return store.Save(ctx, s.ID, s.Game.Record())
}

func DeleteSession(ctx context.Context, s *Session) {
	if s == nil {
		return
	}
	sessions.Del(s.ID)
	if err := store.Delete(ctx, s.ID); err != nil {
		log.Error(err)
	}
}

func sessionCancel(s *Session) {
	if s.Online() == 0 {
		log.Infof("session %s is not living, removed.\n", s.ID)
		DeleteSession(context.Background(), s)
	}
}
