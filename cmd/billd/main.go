package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/katiyar-electronics/bill-engine/internal/category"
	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/export"
	"github.com/katiyar-electronics/bill-engine/internal/pipeline"
	"github.com/katiyar-electronics/bill-engine/internal/repository"
	"github.com/katiyar-electronics/bill-engine/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	bills := repository.NewPGBillRepository(pool, logger)
	if err := bills.EnsureSchema(ctx); err != nil {
		logger.Error("ensuring schema", "error", err)
		os.Exit(1)
	}

	lookup := category.NewClient(cfg.Lookup, logger)
	if !lookup.Enabled() {
		logger.Warn("category lookup disabled: no credentials configured")
	}

	processor := pipeline.NewProcessor(lookup, logger)
	exporter := export.NewService(bills, logger)
	svc := server.NewService(processor, bills, exporter, logger)

	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Admin gRPC listener: health + reflection for orchestration probes.
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.AdminAddr)
	if err != nil {
		logger.Error("admin listen failed", "addr", cfg.Server.AdminAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("admin grpc serving", "addr", cfg.Server.AdminAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("admin grpc serve failed", "error", err)
		}
	}()

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
