// cmd/server is the main entrypoint for a cluster node.
//
// Configuration is entirely via flags/environment so a single binary can
// serve any position in the cluster.
//
// Example — 3-node cluster on one host:
//
//	export POSTGRES_URL=postgres://kv:kv@localhost/kv
//	./server --id localhost:50051 --peers localhost:50051,localhost:50052,localhost:50053
//	./server --id localhost:50052 --peers localhost:50051,localhost:50052,localhost:50053
//	./server --id localhost:50053 --peers localhost:50051,localhost:50052,localhost:50053
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"kvcluster/internal/api"
	"kvcluster/internal/cluster"
	"kvcluster/internal/config"
	"kvcluster/internal/durable"
	"kvcluster/internal/legacy"
	"kvcluster/internal/server"
	"kvcluster/internal/store"
)

const shutdownGrace = 15 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lgr, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer lgr.Sync()

	if err := run(cfg, lgr); err != nil {
		lgr.Fatal("fatal", zap.Error(err))
	}
}

func run(cfg *config.Config, lgr *zap.Logger) error {
	// ── Durable store ──────────────────────────────────────────────────────
	// An unreachable database is a boot failure: acknowledging writes without
	// it would break the write-through contract from the first request.
	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pg, err := durable.Open(bootCtx, cfg.PostgresURL)
	cancel()
	if err != nil {
		return err
	}
	defer pg.Close()

	// ── Cluster state ──────────────────────────────────────────────────────
	ring, err := cluster.BuildRing(cfg.Peers, cfg.Vnodes)
	if err != nil {
		return err
	}
	pool, err := cluster.NewPool(cfg.NodeID, cfg.Peers)
	if err != nil {
		return err
	}
	defer pool.Close()

	var legacySrc cluster.LegacySource
	if cfg.LegacyAPIURL != "" {
		legacySrc = legacy.New(cfg.LegacyAPIURL, lgr)
	}

	st := store.New()
	coord := cluster.NewCoordinator(cluster.CoordinatorConfig{
		Self:         cfg.NodeID,
		Ring:         ring,
		Store:        st,
		Peers:        pool,
		Durable:      pg,
		Legacy:       legacySrc,
		ReplicationN: cfg.ReplicationN,
		Logger:       lgr,
	})

	// ── RPC server ─────────────────────────────────────────────────────────
	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("bind %s: %w", cfg.ListenAddr(), err)
	}
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		server.Recovery(lgr),
		server.Logging(lgr),
	))
	server.New(coord, lgr).Register(grpcSrv)

	var adminSrv *http.Server
	if cfg.AdminAddr != "" {
		adminSrv = &http.Server{
			Addr:         cfg.AdminAddr,
			Handler:      api.NewHandler(cfg.NodeID, ring, st, lgr).Router(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
	}

	// ── Serve until SIGINT/SIGTERM ─────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lgr.Info("node listening",
			zap.String("node", cfg.NodeID),
			zap.String("addr", cfg.ListenAddr()),
			zap.Int("members", ring.Size()),
			zap.Int("replication", cfg.ReplicationN))
		return grpcSrv.Serve(lis)
	})
	if adminSrv != nil {
		g.Go(func() error {
			lgr.Info("admin listening", zap.String("addr", cfg.AdminAddr))
			if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		lgr.Info("shutting down", zap.String("node", cfg.NodeID))

		// Give in-flight requests the grace period, then cut them off.
		done := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			grpcSrv.Stop()
		}

		if adminSrv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			_ = adminSrv.Shutdown(shutdownCtx)
		}
		return nil
	})

	if err := g.Wait(); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}
