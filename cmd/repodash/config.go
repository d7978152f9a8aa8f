package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the container for app configuration
type Config struct {
	// APIAddress - address of the analytics backend with protocol
	APIAddress string `default:"http://localhost:5000" split_words:"true"`

	// APIRateLimit - max frequency of backend calls per second, 0 means unlimited
	APIRateLimit float64 `default:"0" split_words:"true"`

	// HTTPTimeout - timeout for backend calls, 0 means no timeout
	HTTPTimeout time.Duration `default:"0" split_words:"true"`

	// StoreBackend - one of bolt, sqlite, mysql, postgresql, redis
	StoreBackend string `default:"bolt" split_words:"true"`

	// StorePath - database file for bolt and sqlite backends
	StorePath string `default:"./repodash.data" split_words:"true"`

	// StoreNamespace - bolt bucket, sql table or redis key prefix
	StoreNamespace string `default:"repodash" split_words:"true"`

	// StoreDSN - connection string for mysql, postgresql and redis backends
	StoreDSN string `default:"" split_words:"true"`

	// CacheMemoSize - number of cached values kept in memory, 0 disables the memo
	CacheMemoSize int `default:"64" split_words:"true"`

	// DebounceDelay - quiet period after the last run trigger before a query cycle starts
	DebounceDelay time.Duration `default:"400ms" split_words:"true"`

	// LogLevel - logrus level name
	LogLevel string `default:"info" split_words:"true"`

	// LogFile - log destination for the interactive dashboard. If empty, dashboard logs are discarded
	LogFile string `default:"" split_words:"true"`

	// UseColors - colorize output when stdout is a terminal
	UseColors bool `default:"true" split_words:"true"`

	// Width - render width in columns. If 0, terminal width is used
	Width int `default:"0"`
}

func loadConfig() (Config, error) {
	var conf Config
	err := envconfig.Process("repodash", &conf)
	return conf, err
}
