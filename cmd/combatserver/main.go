// Package main provides the combat server binary that exposes the
// encounter, hit-point, and condition engines over gRPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/gametable/internal/combatserver"
	combatv1 "github.com/cory-johannsen/gametable/internal/combatserver/combatv1"
	"github.com/cory-johannsen/gametable/internal/config"
	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/dice"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
	"github.com/cory-johannsen/gametable/internal/observability"
	"github.com/cory-johannsen/gametable/internal/scripting"
	"github.com/cory-johannsen/gametable/internal/server"
	"github.com/cory-johannsen/gametable/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting combat server",
		zap.String("grpc_addr", cfg.Server.Addr()),
	)

	// Load the condition library.
	libStart := time.Now()
	library, err := condition.LoadDirectory(cfg.Combat.ConditionDir)
	if err != nil {
		logger.Fatal("loading condition library", zap.Error(err))
	}
	logger.Info("condition library loaded",
		zap.Int("conditions", len(library.All())),
		zap.Duration("elapsed", time.Since(libStart)),
	)

	// Connect to PostgreSQL for encounter persistence.
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)
	store := postgres.NewStore(pool.DB())

	cryptoSrc := dice.NewCryptoSource()
	roller := dice.NewRoller(cryptoSrc, logger)

	// Lua condition hooks are optional; an empty script_dir disables them.
	var hooks condition.HookRunner
	if cfg.Combat.ScriptDir != "" {
		scriptMgr := scripting.NewManager(roller, logger, cfg.Combat.ScriptInstructionLimit)
		if err := scriptMgr.Load(cfg.Combat.ScriptDir); err != nil {
			logger.Fatal("loading condition hook scripts", zap.Error(err))
		}
		defer scriptMgr.Close()
		hooks = scriptMgr
		logger.Info("condition hook scripts loaded", zap.String("dir", cfg.Combat.ScriptDir))
	}

	locks := encounter.NewKeyedLock()
	manager := encounter.NewManager(store, cryptoSrc, locks, logger)
	tracker := encounter.NewHPTracker(store, locks, logger)
	engine := condition.NewEngine(store, library, store, locks, hooks, logger)

	svc := combatserver.NewCombatServiceServer(manager, tracker, engine, roller, logger)

	grpcServer := grpc.NewServer()
	combatv1.RegisterCombatServiceServer(grpcServer, svc)

	// The lifecycle bounds each service's Stop with the shutdown grace
	// period, so GracefulStop below needs no timer of its own.
	lifecycle := server.NewLifecycle(logger, cfg.Server.ShutdownGracePeriod)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func(_ context.Context) error {
			lis, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Server.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return grpcServer.Serve(lis)
		},
		StopFn: grpcServer.GracefulStop,
	})

	lifecycle.Add("postgres", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := pool.Health(ctx, 5*time.Second); err != nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			}
		},
		StopFn: func() {
			pool.Close()
		},
	})

	logger.Info("combat server initialized",
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
