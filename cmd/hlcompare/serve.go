package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hlcompare/internal/analysis"
	"hlcompare/internal/auth"
	"hlcompare/internal/compare"
	"hlcompare/internal/config"
	"hlcompare/internal/events"
	"hlcompare/internal/evidence"
	"hlcompare/internal/httpapi"
	"hlcompare/internal/metrics"
	"hlcompare/internal/store"
	"hlcompare/internal/store/postgres"
	"hlcompare/internal/uploads"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HL Compare API server",
		Long:  "Start the HTTP API with document upload, comparison, accounts, and websocket events.",
		RunE:  runServe,
	}
	cmd.Flags().Bool("no-db", false, "Run without PostgreSQL persistence")
	cmd.Flags().Bool("no-redis", false, "Run without Redis sessions (disables accounts)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	scorerCfg := evidence.DefaultConfig()
	scorerCfg.Weights = cfg.Scoring.Weights
	scorer := evidence.NewScorer(scorerCfg)
	pipeline := compare.NewPipeline(scorer, analysis.NewLibrary(), log.Logger)

	// Persistence is optional: the comparison path works without it.
	var repos *store.Repos
	if noDB, _ := cmd.Flags().GetBool("no-db"); !noDB {
		db, r, err := postgres.Open(cfg.Database)
		if err != nil {
			log.Warn().Err(err).Msg("database unavailable, results will not be stored")
		} else {
			defer db.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := postgres.Migrate(ctx, db); err != nil {
				log.Warn().Err(err).Msg("schema migration failed")
			}
			cancel()
			repos = r
		}
	}

	// Accounts need Redis for sessions; without it the auth routes 503.
	var authService *auth.Service
	if noRedis, _ := cmd.Flags().GetBool("no-redis"); !noRedis && repos != nil {
		sessions := auth.NewSessionStore(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := sessions.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, accounts disabled")
			sessions.Close()
		} else {
			defer sessions.Close()
			authService = auth.NewService(repos.Users, sessions, log.Logger)
		}
	}

	hub := events.NewHub(log.Logger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	server := httpapi.NewServer(cfg, httpapi.Deps{
		Logger:   log.Logger,
		Pipeline: pipeline,
		Uploads:  uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxFileBytes),
		Auth:     authService,
		Repos:    repos,
		Hub:      hub,
		Metrics:  metrics.New(),
	})
	go hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
