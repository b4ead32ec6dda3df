package repository

// CacheRepository caches computed ledgers keyed by the scenario input hash.
// A cache entry is only ever replaced wholesale; there is no partial update.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
