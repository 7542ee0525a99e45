// Package cache memoizes extraction results during a batch run so that
// duplicate input paths are only extracted once. Nothing is persisted
// beyond the process lifetime.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/fievelk/kwe/internal/model"
)

// Cache defines the interface for result caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the document path, its modification time
// and the extraction settings, so a changed file or a changed configuration
// never serves a stale result.
func Key(path string, modTime time.Time, cfg model.ExtractionConfig) string {
	fingerprint := fmt.Sprintf("%s|%d|%d|%v|%s|%s|%s",
		path,
		modTime.UnixNano(),
		cfg.MaxKeywordSize,
		cfg.FlexibleWindow,
		cfg.Tokenizer,
		strings.Join(cfg.Stopwords, ","),
		strings.Join(cfg.ExtraPunctuation, ","),
	)
	hash := sha256.Sum256([]byte(fingerprint))
	return "kwe:v1:" + hex.EncodeToString(hash[:])
}
