// ABOUTME: Badger-backed TTL cache for food lookup responses.
// ABOUTME: Caches only HTTP answers; user records never touch disk.
package food

import (
	"encoding/json"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

const cacheTTL = 24 * time.Hour

// Cache stores lookup results keyed by the lowercased query. Entries
// expire after a day so stale product data ages out on its own.
// All methods are safe on a nil receiver, which disables caching.
type Cache struct {
	db *badger.DB
}

// OpenCache opens (or creates) the cache at dir.
func OpenCache(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Get returns the cached product for the query, if present and fresh.
func (c *Cache) Get(name string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}

	var p Product
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return Product{}, false
	}
	return p, true
}

// Set stores the product for the query. Errors are swallowed; a failed
// cache write only costs a future HTTP request.
func (c *Cache) Set(name string, p Product) {
	if c == nil {
		return
	}

	val, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(cacheKey(name), val).WithTTL(cacheTTL)
		return txn.SetEntry(e)
	})
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(name string) []byte {
	return []byte("food:" + strings.ToLower(strings.TrimSpace(name)))
}
