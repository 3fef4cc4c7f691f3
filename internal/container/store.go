package container

import (
	"context"
	"fmt"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/health"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Storage is the configured short-link repository together with its
// health check and connection teardown.
type Storage struct {
	shortlink.Repository

	Backend string
	checker health.Checker
	close   func() error
}

// Ping reports whether the backing store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.checker.Ping(ctx)
}

func (s *Storage) Shutdown() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}

// StorePackage provides the Storage selected by Options.Store, optionally
// fronted by the Redis read cache.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*Storage, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		storage, err := openStorage(i, options)
		if err != nil {
			return nil, err
		}

		if options.CacheTTL > 0 && options.Store != StoreRedis {
			redisConn := do.MustInvoke[*Redis](i)
			ttl := time.Duration(options.CacheTTL) * time.Second
			storage.Repository = store.NewRedisCacheRepository(storage.Repository, redisConn.Client, ttl)

			logger.Info("redis cache enabled", zap.Duration("ttl", ttl))
		}

		logger.Info("storage ready", zap.String("backend", storage.Backend))

		return storage, nil
	})
}

func openStorage(i *do.Injector, options *Options) (*Storage, error) {
	switch options.Store {
	case StoreMemory, "":
		memStore := store.NewMemoryStore()

		return &Storage{Repository: memStore, Backend: StoreMemory, checker: memStore}, nil
	case StoreRedis:
		redisStore := store.NewRedisStore(do.MustInvoke[*Redis](i).Client)

		return &Storage{Repository: redisStore, Backend: StoreRedis, checker: redisStore}, nil
	case StorePostgres:
		return openPostgres(options.DatabaseURL)
	case StoreMongo:
		return openMongo(options.MongoURI, options.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q", options.Store)
	}
}

func openPostgres(databaseURL string) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	pgStore := store.NewPostgresStore(pool)
	if err := pgStore.EnsureSchema(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("postgres: ensure schema: %w", err)
	}

	return &Storage{
		Repository: pgStore,
		Backend:    StorePostgres,
		checker:    pgStore,
		close: func() error {
			pool.Close()

			return nil
		},
	}, nil
}

func openMongo(uri, database string) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	mongoStore := store.NewMongoStore(client.Database(database).Collection(store.DefaultMongoCollection))
	if err := mongoStore.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("mongo: ensure indexes: %w", err)
	}

	return &Storage{
		Repository: mongoStore,
		Backend:    StoreMongo,
		checker:    mongoStore,
		close: func() error {
			return client.Disconnect(context.Background())
		},
	}, nil
}
