package database

import (
	"fmt"
)

// KVStore is a persistent key-value store.
// ReadKey returns nil data when there's nothing stored under key.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
	Close() error
}

// Backend names a KVStore implementation.
type Backend string

// Supported backends.
const (
	BoltBackend       Backend = "bolt"
	SQLiteBackend     Backend = "sqlite"
	MySQLBackend      Backend = "mysql"
	PostgreSQLBackend Backend = "postgresql"
	RedisBackend      Backend = "redis"
)

// Options selects and configures a KVStore.
type Options struct {
	Backend Backend

	// Path is the database file for bolt and sqlite backends.
	Path string

	// Namespace is the bolt bucket, the sql table name or the redis key prefix.
	Namespace string

	// DSN is the connection string for mysql, postgresql and redis backends.
	// For sqlite it overrides Path when set.
	DSN string
}

var (
	_ KVStore = &BoltKVStore{}
	_ KVStore = &SQLKVStore{}
	_ KVStore = &RedisKVStore{}
)

// Open creates the KVStore selected by o.Backend.
func Open(o Options) (KVStore, error) {
	switch o.Backend {
	case BoltBackend, "":
		return NewBoltKVStore(o.Path, o.Namespace)
	case SQLiteBackend:
		dsn := o.DSN
		if dsn == "" {
			dsn = o.Path
		}
		return NewSQLKVStore(SQLiteBackend, dsn, o.Namespace)
	case MySQLBackend, PostgreSQLBackend:
		return NewSQLKVStore(o.Backend, o.DSN, o.Namespace)
	case RedisBackend:
		return NewRedisKVStore(o.DSN, o.Namespace)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be bolt, sqlite, mysql, postgresql or redis", o.Backend)
	}
}
