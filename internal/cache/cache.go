package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

// Cache defines the interface for byte-level caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// AnswerKey generates the cache key for one provider call. Question
// text is hashed, so arbitrarily long panel questions stay valid file
// names.
func AnswerKey(provider, model, question string) string {
	hash := sha256.Sum256([]byte(provider + "|" + model + "|" + question))
	return "geotracker:v1:" + hex.EncodeToString(hash[:])
}

// AnswerCache stores fetched answers so repeated runs over the same
// panel only pay for new questions. Scoring is cheap and never cached;
// only the provider call is.
type AnswerCache struct {
	store Cache
	ttl   time.Duration
}

// NewAnswerCache creates an answer cache over the given byte store.
func NewAnswerCache(store Cache, ttl time.Duration) *AnswerCache {
	return &AnswerCache{store: store, ttl: ttl}
}

// Get returns the cached answer for the call, if present and fresh.
func (c *AnswerCache) Get(provider, modelName, question string) (*model.Answer, bool) {
	data, found := c.store.Get(AnswerKey(provider, modelName, question))
	if !found {
		return nil, false
	}

	var ans model.Answer
	if err := json.Unmarshal(data, &ans); err != nil {
		// A corrupt entry behaves like a miss; the fresh fetch will
		// overwrite it.
		return nil, false
	}
	return &ans, true
}

// Set stores the answer under its call key.
func (c *AnswerCache) Set(ans *model.Answer) error {
	data, err := json.Marshal(ans)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}
	return c.store.Set(AnswerKey(ans.Provider, ans.Model, ans.Question), data, c.ttl)
}
