// Package cache persists JSON-encoded values in a key-value store.
package cache

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/repodash/internal/app"
)

// KVStore provides simple kv data storage.
// ReadKey returns nil data when there's nothing stored under key.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// KeyValueCache stores JSON-encoded values in a KVStore.
// Entries never expire; the last write wins.
//
// Raw values are memoized in memory, so repeated reads of the same key don't hit the store.
// The memo only ever holds bytes that were read from or written to the store.
type KeyValueCache struct {
	store KVStore
	memo  *lru.Cache
	json  jsoniter.API
}

var _ app.Cache = &KeyValueCache{}

// New creates new KeyValueCache instance.
// memoSize is the number of raw values memoized in memory, 0 disables the memo.
func New(store KVStore, memoSize int) (*KeyValueCache, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}

	c := KeyValueCache{
		store: store,
		json:  jsoniter.ConfigCompatibleWithStandardLibrary,
	}
	if memoSize > 0 {
		memo, err := lru.New(memoSize)
		if err != nil {
			return nil, fmt.Errorf("creating lru memo: %w", err)
		}
		c.memo = memo
	}

	return &c, nil
}

// Get decodes value stored under key into v.
// Returns false and nil error if there's no value for key.
// Store failures and undecodable values are returned as *app.StorageError.
func (c *KeyValueCache) Get(key string, v interface{}) (bool, error) {
	data, err := c.read(key)
	if err != nil {
		return false, &app.StorageError{Op: "read", Key: key, Err: err}
	}
	if data == nil {
		return false, nil
	}

	if err := c.json.Unmarshal(data, v); err != nil {
		return false, &app.StorageError{Op: "decode", Key: key, Err: err}
	}

	return true, nil
}

// Set encodes v and stores it under key, overwriting any previous value.
func (c *KeyValueCache) Set(key string, v interface{}) error {
	data, err := c.json.Marshal(v)
	if err != nil {
		return &app.StorageError{Op: "encode", Key: key, Err: err}
	}

	if err := c.store.UpdateKey([]byte(key), data); err != nil {
		if c.memo != nil {
			c.memo.Remove(key)
		}
		return &app.StorageError{Op: "write", Key: key, Err: err}
	}
	if c.memo != nil {
		c.memo.Add(key, data)
	}

	return nil
}

// Forget drops memoized value for key. Use it after the store was modified by other means.
func (c *KeyValueCache) Forget(key string) {
	if c.memo != nil {
		c.memo.Remove(key)
	}
}

func (c *KeyValueCache) read(key string) ([]byte, error) {
	if c.memo != nil {
		if val, ok := c.memo.Get(key); ok {
			return val.([]byte), nil
		}
	}

	data, err := c.store.ReadKey([]byte(key))
	if err != nil {
		return nil, err
	}
	if data != nil && c.memo != nil {
		c.memo.Add(key, data)
	}

	return data, nil
}
