package router

import (
	"database/sql"
	"net/http"

	mem "genefit/internal/adapters/storage/memory"
	pg "genefit/internal/adapters/storage/postgres"
	"genefit/internal/domain/analytics"
	"genefit/internal/domain/genetics"
	"genefit/internal/domain/profiles"
	"genefit/internal/domain/subscriptions"
	"genefit/internal/middleware"
	"genefit/internal/platform/logger"
	"genefit/internal/ports/auth"
	"genefit/internal/ports/store"

	_ "genefit/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil: dev mode

	// Postgres when set, in-memory otherwise.
	DB *sql.DB

	Logger logger.Logger

	// Metrics registry; a fresh one is created when nil.
	Registry *prometheus.Registry

	// Optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

type repos struct {
	profiles      profiles.Repository
	genetics      genetics.Repos
	subscriptions subscriptions.Repos
	analytics     analytics.Repos
	tx            store.Transactor
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	// Claims must be in the context before the access log reads them.
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.NewMetrics(reg).Handler)
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Handler)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rs := newRepos(opts.DB)
	if opts.DB != nil {
		log.Info("using postgres store", nil)
	} else {
		log.Info("using in-memory store", nil)
	}

	profilesSvc := profiles.NewService(rs.profiles)
	geneticsSvc := genetics.NewService(rs.genetics, profilesSvc, rs.tx)
	subsSvc := subscriptions.NewService(rs.subscriptions, profilesSvc, rs.tx)
	analyticsSvc := analytics.NewService(rs.analytics)

	profiles.RegisterRoutes(r, profilesSvc, log.With(map[string]any{"module": "profiles"}))
	genetics.RegisterRoutes(r, geneticsSvc, log.With(map[string]any{"module": "genetics"}))
	subscriptions.RegisterRoutes(r, subsSvc, log.With(map[string]any{"module": "subscriptions"}))
	analytics.RegisterRoutes(r, analyticsSvc, log.With(map[string]any{"module": "analytics"}))

	return r
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			profiles:      pg.NewProfilesRepo(db),
			genetics:      pg.NewGeneticsRepos(db),
			subscriptions: pg.NewSubscriptionRepos(db),
			analytics:     pg.NewAnalyticsRepos(db),
			tx:            pg.NewTransactor(db),
		}
	}
	return repos{
		profiles:      mem.NewProfileRepo(),
		genetics:      mem.NewGeneticsRepos(),
		subscriptions: mem.NewSubscriptionRepos(),
		analytics:     mem.NewAnalyticsRepos(),
		tx:            mem.NewTransactor(),
	}
}
