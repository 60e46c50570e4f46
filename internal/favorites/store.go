package favorites

import (
	"CurrencyConverter/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Key is the storage key holding the favourites array.
const Key = "favorites"

var ErrNotFound = errors.New("favorites: key not found")

// KV is the narrow key/value storage the favourites live in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

type Store struct {
	kv       KV
	defaults Set
}

func NewStore(kv KV, defaults []model.CurrencyCode) *Store {
	return &Store{kv: kv, defaults: NewSet(defaults...)}
}

// Load returns the persisted favourites. Missing or malformed data yields the
// default seed; only storage failures are returned as errors.
func (s *Store) Load(ctx context.Context) (Set, error) {
	raw, err := s.kv.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		return Set{}, fmt.Errorf("favorites: load: %w", err)
	}
	var codes []model.CurrencyCode
	if err := json.Unmarshal(raw, &codes); err != nil || codes == nil {
		log.Printf("[Favorites] Stored favorites are malformed, using defaults: %v", err)
		return s.defaults, nil
	}
	return NewSet(codes...), nil
}

func (s *Store) Save(ctx context.Context, set Set) error {
	b, err := json.Marshal(set.Codes())
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, Key, b); err != nil {
		return fmt.Errorf("favorites: save: %w", err)
	}
	return nil
}
