// Package httpapi is the HTTP surface of the comparison service: document
// upload and comparison, stored results, account registration and login,
// document summaries, websocket events, and operational endpoints.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hlcompare/internal/auth"
	"hlcompare/internal/compare"
	"hlcompare/internal/config"
	"hlcompare/internal/events"
	"hlcompare/internal/metrics"
	"hlcompare/internal/store"
	"hlcompare/internal/uploads"
)

// Deps carries the server's collaborators. Auth and Repos may be nil, which
// disables accounts and persistence while keeping comparisons available.
type Deps struct {
	Logger   zerolog.Logger
	Pipeline *compare.Pipeline
	Uploads  *uploads.Store
	Auth     *auth.Service
	Repos    *store.Repos
	Hub      *events.Hub
	Metrics  *metrics.Registry
}

// Server hosts the comparison API.
type Server struct {
	cfg      config.Config
	log      zerolog.Logger
	router   *mux.Router
	server   *http.Server
	pipeline *compare.Pipeline
	uploads  *uploads.Store
	auth     *auth.Service
	repos    *store.Repos
	breaker  *store.Breaker
	hub      *events.Hub
	metrics  *metrics.Registry
	limiter  *ipLimiter
	started  time.Time
}

// NewServer assembles the router and its middleware chain. Nil optional
// dependencies are replaced with working defaults where one exists.
func NewServer(cfg config.Config, deps Deps) *Server {
	if deps.Pipeline == nil {
		deps.Pipeline = compare.NewPipeline(nil, nil, deps.Logger)
	}
	if deps.Uploads == nil {
		deps.Uploads = uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxFileBytes)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Hub == nil {
		deps.Hub = events.NewHub(deps.Logger)
	}
	deps.Hub.OnClientCount = func(n int) {
		deps.Metrics.WebsocketClients.Set(float64(n))
	}

	s := &Server{
		cfg:      cfg,
		log:      deps.Logger,
		router:   mux.NewRouter(),
		pipeline: deps.Pipeline,
		uploads:  deps.Uploads,
		auth:     deps.Auth,
		repos:    deps.Repos,
		breaker:  store.NewBreaker("postgres"),
		hub:      deps.Hub,
		metrics:  deps.Metrics,
		started:  time.Now(),
	}
	if cfg.RateLimit.Enabled {
		s.limiter = newIPLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.rateLimitMiddleware)

	// Websocket upgrade and static files bypass the JSON middleware.
	s.router.HandleFunc("/ws", s.hub.ServeWS).Methods("GET")
	s.router.PathPrefix("/files/").Handler(
		http.StripPrefix("/files/", http.FileServer(http.Dir(s.uploads.Dir()))))
	s.router.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.Gatherer(), promhttp.HandlerOpts{})).Methods("GET")

	api := s.router.PathPrefix("/").Subrouter()
	api.Use(s.timeoutMiddleware)
	api.Use(s.jsonContentTypeMiddleware)
	api.Use(s.metricsMiddleware)

	api.HandleFunc("/", s.handleRoot).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	api.HandleFunc("/register", s.handleRegister).Methods("POST")
	api.HandleFunc("/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/logout", s.handleLogout).Methods("POST")

	api.HandleFunc("/compare/", s.handleCompare).Methods("POST")
	api.HandleFunc("/results/{id:[0-9]+}", s.handleResult).Methods("GET")
	api.HandleFunc("/results/{id:[0-9]+}/memo", s.handleMemo).Methods("GET")
	api.HandleFunc("/documents/summary", s.handleDocumentSummary).Methods("POST")

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

// Handler exposes the assembled router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the listener until Shutdown or a fatal error.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("http server listening")
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.server.Shutdown(ctx)
}
