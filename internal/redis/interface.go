package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers depend on this package
// rather than on go-redis directly.
type Client interface {
	redis.UniversalClient
}
