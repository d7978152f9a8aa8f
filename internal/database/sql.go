package database

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// SQLKVStore keeps key-value pairs in a single sql table.
type SQLKVStore struct {
	db        *sql.DB
	tableName string
	backend   Backend
}

// NewSQLKVStore opens the database, verifies the connection and creates the table if needed.
func NewSQLKVStore(backend Backend, dsn string, tableName string) (*SQLKVStore, error) {
	if !tableNameRe.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	var driverName string
	switch backend {
	case SQLiteBackend:
		driverName = "sqlite"
	case MySQLBackend:
		// dsn: user:password@tcp(host:port)/dbname
		driverName = "mysql"
	case PostgreSQLBackend:
		// dsn: host=localhost port=5432 user=postgres password=secret dbname=postgres
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("unsupported sql backend: %s", backend)
	}
	if dsn == "" {
		return nil, fmt.Errorf("%s backend requires a connection string", backend)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", backend, err)
	}
	if backend == SQLiteBackend {
		// Single connection avoids "database is locked" errors.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", backend, err)
	}

	s := SQLKVStore{
		db:        db,
		tableName: tableName,
		backend:   backend,
	}
	if _, err := db.Exec(s.createTableQuery()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating table %s: %w", tableName, err)
	}

	return &s, nil
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *SQLKVStore) ReadKey(key []byte) ([]byte, error) {
	query := fmt.Sprintf(`SELECT cache_value FROM %s WHERE cache_key = %s`, s.quotedTableName(), s.placeholder(1))

	var data []byte
	if err := s.db.QueryRow(query, string(key)).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading from db: %w", err)
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *SQLKVStore) UpdateKey(key []byte, data []byte) error {
	if _, err := s.db.Exec(s.upsertQuery(), string(key), data, time.Now().Unix()); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// DeleteKey removes given key. Deleting a missing key is not an error.
func (s *SQLKVStore) DeleteKey(key []byte) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE cache_key = %s`, s.quotedTableName(), s.placeholder(1))
	if _, err := s.db.Exec(query, string(key)); err != nil {
		return fmt.Errorf("deleting from db: %w", err)
	}

	return nil
}

// Close closes the underlying DB connection.
func (s *SQLKVStore) Close() error {
	return s.db.Close()
}

func (s *SQLKVStore) createTableQuery() string {
	switch s.backend {
	case MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(255) PRIMARY KEY,
				cache_value LONGBLOB NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, s.quotedTableName())

	case PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BYTEA NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, s.quotedTableName())

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BLOB NOT NULL,
				updated_at INTEGER NOT NULL
			);
		`, s.quotedTableName())
	}
}

func (s *SQLKVStore) upsertQuery() string {
	table := s.quotedTableName()
	switch s.backend {
	case MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, updated_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE cache_value = new.cache_value, updated_at = new.updated_at`, table)

	case PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (cache_key) DO UPDATE SET cache_value = EXCLUDED.cache_value, updated_at = EXCLUDED.updated_at`, table)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, cache_value, updated_at) VALUES (?, ?, ?)`, table)
	}
}

func (s *SQLKVStore) placeholder(n int) string {
	if s.backend == PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *SQLKVStore) quotedTableName() string {
	if s.backend == MySQLBackend {
		return "`" + s.tableName + "`"
	}
	return `"` + s.tableName + `"`
}
