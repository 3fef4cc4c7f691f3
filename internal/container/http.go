package container

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/handlers"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/health"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/middleware"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jaevor/go-nanoid"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// HTTPPackage provides the registry, the chi router and the huma API with
// every route registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortlink.Registry, error) {
		options := do.MustInvoke[*Options](i)
		storage := do.MustInvoke[*Storage](i)

		generate, err := nanoid.Standard(options.CodeLength)
		if err != nil {
			return nil, err
		}

		return shortlink.NewRegistry(storage, generate, shortlink.WithMaxAttempts(options.MaxAttempts)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		router := chi.NewMux()
		router.Use(chimw.RequestID)
		router.Use(middleware.RequestLogger(logger))
		router.Use(chimw.Recoverer)
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: splitOrigins(options.CORSOrigins),
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{"Location"},
			MaxAge:         300,
		}))

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)
		registry := do.MustInvoke[*shortlink.Registry](i)
		publishers := do.MustInvoke[analytics.Publishers](i)
		logger := do.MustInvoke[*zap.Logger](i)

		api := humachi.New(router, huma.DefaultConfig("Short-Link Registry", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api))

		handlers.RegisterRoutes(api, handlers.NewShortLinkHandler(registry, publishers, logger))
		health.RegisterRoutes(api, health.NewHandler(healthCheckers(i, options)))

		return api, nil
	})
}

func healthCheckers(i *do.Injector, options *Options) map[string]health.Checker {
	checkers := map[string]health.Checker{
		"store": do.MustInvoke[*Storage](i),
	}

	if options.usesRedis() {
		checkers["redis"] = health.NewRedisChecker(do.MustInvoke[*Redis](i).Client)
	}

	return checkers
}

func splitOrigins(raw string) []string {
	var origins []string

	for origin := range strings.SplitSeq(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
