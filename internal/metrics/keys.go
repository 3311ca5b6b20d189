package metrics

import "fmt"

const (
	// KeyPrefixMetrics is the prefix for all metrics keys
	KeyPrefixMetrics = "social:metrics"
	// KeyPrefixTemplated is the prefix for templated transformation counters
	KeyPrefixTemplated = "templated"
	// KeyPrefixDefault is the prefix for default-path transformation counters
	KeyPrefixDefault = "default"
	// MetricsTTLDays is the TTL in days for metrics counters
	MetricsTTLDays = 30
	// HoursPerDay is used to build counter TTLs
	HoursPerDay = 24
)

// RedisKeys provides methods to build Redis keys consistently
type RedisKeys struct {
	prefix string
}

// NewRedisKeys creates a new RedisKeys instance
func NewRedisKeys(prefix string) *RedisKeys {
	return &RedisKeys{prefix: prefix}
}

// Templated returns the counter key for templated transformations on a platform
func (k *RedisKeys) Templated(platform string) string {
	return fmt.Sprintf("%s:%s:%s", k.prefix, KeyPrefixTemplated, platform)
}

// Default returns the counter key for default-path transformations on a platform
func (k *RedisKeys) Default(platform string) string {
	return fmt.Sprintf("%s:%s:%s", k.prefix, KeyPrefixDefault, platform)
}
