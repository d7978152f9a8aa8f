package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/m-zajac/repodash/internal/adapter/analytics"
	"github.com/m-zajac/repodash/internal/cache"
	"github.com/m-zajac/repodash/internal/database"
	"github.com/m-zajac/repodash/internal/limiter"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// errReported is returned when the failure was already shown to the user.
var errReported = errors.New("query cycle failed")

func main() {
	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse config: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(conf).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newLogger(conf Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := logrus.New()
	l.Out = out
	l.Level = level
	return l, nil
}

func useColors(conf Config) bool {
	return conf.UseColors && term.IsTerminal(int(os.Stdout.Fd()))
}

// deps groups long-lived dependencies shared by commands.
type deps struct {
	store  database.KVStore
	cache  *cache.KeyValueCache
	client *analytics.Client
}

func openDeps(conf Config, l logrus.FieldLogger) (*deps, error) {
	store, err := database.Open(database.Options{
		Backend:   database.Backend(conf.StoreBackend),
		Path:      conf.StorePath,
		Namespace: conf.StoreNamespace,
		DSN:       conf.StoreDSN,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s store: %w", conf.StoreBackend, err)
	}

	c, err := cache.New(store, conf.CacheMemoSize)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("couldn't create cache: %w", err)
	}

	httpClient := &http.Client{
		Timeout: conf.HTTPTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.APIRateLimit,
	)

	l.Debugf("using %s store, backend at %s", conf.StoreBackend, conf.APIAddress)

	return &deps{
		store:  store,
		cache:  c,
		client: analytics.NewClient(limitedHTTPClient, conf.APIAddress),
	}, nil
}

func (d *deps) Close() error {
	return d.store.Close()
}
