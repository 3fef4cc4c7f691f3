package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
)

// Redis owns the shared Redis client and closes it on shutdown.
type Redis struct {
	Client *redis.Client
}

func (r *Redis) Shutdown() error {
	return r.Client.Close()
}

// RedisPackage lazily provides the Redis connection; nothing dials until a
// component asks for it.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*Redis, error) {
		options := do.MustInvoke[*Options](i)

		return &Redis{Client: redis.NewClient(&redis.Options{Addr: options.RedisAddr})}, nil
	})
}
