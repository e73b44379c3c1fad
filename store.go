package catalystibc

import (
	dbm "github.com/cometbft/cometbft-db"
)

// KVStore is the persistence interface injected into the contract. The only
// keyed collection this layer maintains is the open-channel registry.
// Implementations need no locking: the host serializes all state-mutating
// calls.
type KVStore interface {
	Get(key []byte) []byte
	Set(key, value []byte)
	Delete(key []byte)
	Iterator(start, end []byte) dbm.Iterator
}

// Store adapts any dbm.DB into a KVStore. The dbm error returns have no
// meaningful recovery inside a contract call, so they panic, matching the
// transactional host model (a panic aborts the whole call, committing
// nothing).
type Store struct {
	db dbm.DB
}

var _ KVStore = Store{}

func NewStore(db dbm.DB) Store {
	return Store{db: db}
}

// NewMemStore returns a Store over an in-memory database, for tests and
// hosts that persist state themselves.
func NewMemStore() Store {
	return NewStore(dbm.NewMemDB())
}

func (s Store) Get(key []byte) []byte {
	v, err := s.db.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (s Store) Set(key, value []byte) {
	if err := s.db.Set(key, value); err != nil {
		panic(err)
	}
}

func (s Store) Delete(key []byte) {
	if err := s.db.Delete(key); err != nil {
		panic(err)
	}
}

func (s Store) Iterator(start, end []byte) dbm.Iterator {
	iter, err := s.db.Iterator(start, end)
	if err != nil {
		panic(err)
	}
	return iter
}
