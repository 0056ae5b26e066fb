package openf1

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"trackshift.klederson.com/internal/config"
)

const createResponsesTable = `CREATE TABLE IF NOT EXISTS responses (
	url TEXT PRIMARY KEY,
	body BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// Cache stores raw API responses keyed by request URL. Entries never expire;
// historical sessions do not change.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenCache opens (or creates) the cache database inside dir.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache dir")
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, config.CacheFileName))
	if err != nil {
		return nil, errors.Wrap(err, "opening cache")
	}
	if _, err := db.Exec(createResponsesTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initialising cache")
	}

	return &Cache{db: db}, nil
}

// Get returns the cached body for url.
func (c *Cache) Get(url string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body []byte
	err := c.db.QueryRow("SELECT body FROM responses WHERE url = ?", url).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// Put stores body for url, replacing any previous entry.
func (c *Cache) Put(url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec("INSERT OR REPLACE INTO responses (url, body, fetched_at) VALUES (?, ?, ?)",
		url, body, time.Now().Unix())
	return err
}

// Len is the number of cached responses.
func (c *Cache) Len() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM responses").Scan(&n)
	return n, err
}

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Close()
}
