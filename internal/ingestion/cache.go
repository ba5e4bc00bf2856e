package ingestion

import (
	"context"
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

// DefaultCacheTTL is how long a fetched posting stays fresh.
const DefaultCacheTTL = 7 * 24 * time.Hour

var bucketPostings = []byte("postings")

// cachedPosting is the stored representation of one fetched posting.
type cachedPosting struct {
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Cache is a bbolt-backed store for fetched job postings, so repeated runs
// against the same posting do not re-fetch it.
type Cache struct {
	db  *bbolt.DB
	ttl time.Duration
}

// OpenCache opens (or creates) the cache file at path.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &Error{URL: path, Message: "failed to open cache", Cause: err}
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPostings)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, &Error{URL: path, Message: "failed to initialize cache", Cause: err}
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// get returns the cached text for url when present and fresh.
func (c *Cache) get(url string) (string, bool) {
	var posting cachedPosting
	found := false
	_ = c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketPostings).Get([]byte(url))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &posting); err != nil {
			return nil // treat a corrupt entry as a miss
		}
		found = true
		return nil
	})
	if !found || time.Since(posting.FetchedAt) > c.ttl {
		return "", false
	}
	return posting.Text, true
}

// put stores the fetched text for url.
func (c *Cache) put(url, text string) error {
	data, err := json.Marshal(cachedPosting{Text: text, FetchedAt: time.Now()})
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPostings).Put([]byte(url), data)
	})
}

// FetchJobPostingCached fetches through the cache: a fresh entry is
// returned as-is, otherwise the posting is fetched and stored.
func (c *Cache) FetchJobPostingCached(ctx context.Context, url string) (string, error) {
	if text, ok := c.get(url); ok {
		return text, nil
	}
	text, err := FetchJobPosting(ctx, url)
	if err != nil {
		return "", err
	}
	if err := c.put(url, text); err != nil {
		return "", &Error{URL: url, Message: "failed to cache posting", Cause: err}
	}
	return text, nil
}
