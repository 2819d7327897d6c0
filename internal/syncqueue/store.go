package syncqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/2beens/trainlog/internal/trainlog"
	"github.com/2beens/trainlog/pkg"

	"github.com/go-redis/redis/v8"
)

// StorageKey is the one key the queue state is persisted under.
const StorageKey = "goal-store"

// State is everything that survives a restart: the last view model, the
// sort mode and the queue of unsent mutations.
type State struct {
	Goals               []trainlog.GoalWithLogs `json:"goals"`
	SortByUrgency       bool                    `json:"sortByUrgency"`
	LastFetchedAt       *time.Time              `json:"lastFetchedAt,omitempty"`
	LastVisibleDays     int                     `json:"lastVisibleDays,omitempty"`
	PendingLogMutations []PendingMutation       `json:"pendingLogMutations"`
}

// Store persists State. Load returns a nil state when nothing was saved yet.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

func decodeState(raw []byte) (*State, error) {
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}

type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Load(_ context.Context) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[StorageKey]
	if !ok {
		return nil, nil
	}
	return decodeState(raw)
}

func (s *MemoryStore) Save(_ context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[StorageKey] = raw
	return nil
}

// FileStore keeps the state in a JSON file holding a single object keyed by
// StorageKey. Writes go through a temp file and a rename.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Load(_ context.Context) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	stateRaw, ok := doc[StorageKey]
	if !ok {
		return nil, nil
	}
	return decodeState(stateRaw)
}

func (s *FileStore) Save(_ context.Context, state *State) error {
	raw, err := json.MarshalIndent(map[string]*State{StorageKey: state}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	dirExists, err := pkg.PathExists(dir, true)
	if err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	if !dirExists {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// RedisStore keeps the state as a JSON string under StorageKey, optionally
// prefixed to share one redis between several clients.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	key := StorageKey
	if prefix != "" {
		key = prefix + ":" + StorageKey
	}
	return &RedisStore{
		rdb: rdb,
		key: key,
	}
}

func (s *RedisStore) Load(ctx context.Context) (*State, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get [%s]: %w", s.key, err)
	}
	return decodeState(raw)
}

func (s *RedisStore) Save(ctx context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", s.key, err)
	}
	return nil
}
