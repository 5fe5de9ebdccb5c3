package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	procurementpb "github.com/procurehq/procurement-tracker/gen/proto/procurement/v1"
	"github.com/procurehq/procurement-tracker/internal/cache"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/export"
	"github.com/procurehq/procurement-tracker/internal/extraction/openai"
	"github.com/procurehq/procurement-tracker/internal/patterns"
	"github.com/procurehq/procurement-tracker/internal/pipeline"
	repo "github.com/procurehq/procurement-tracker/internal/repository"
	svc "github.com/procurehq/procurement-tracker/internal/server"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.UnaryRequestID(logger)),
	)

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	suppliersRepo := repo.NewSupplierRepository(entc, logger)
	jobsRepo := repo.NewProcessJobRepository(entc, logger)

	extractionCache := cache.NewMemoryStore(cfg.Cache.SweepInterval,
		cache.WithMaxEntries(cfg.Cache.MaxEntries),
		cache.WithLogger(logger),
	)
	defer extractionCache.Stop()

	aiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	patternExtractor := patterns.New(
		patterns.WithDefaultCurrency(cfg.Extraction.DefaultCurrency),
	)
	resolver := suppliers.NewResolver(suppliersRepo, logger)

	processor := pipeline.NewProcessor(logger, pipeline.Config{
		PromptTemplateID: cfg.Extraction.PromptTemplateID,
		CacheTTL:         cfg.Cache.TTL,
		AITimeout:        cfg.LLM.Timeout,
	}, extractionCache, aiClient, patternExtractor, resolver, documentsRepo, jobsRepo)

	exporter := export.NewService(suppliersRepo, logger)

	service := svc.NewProcurementService(processor, documentsRepo, resolver, suppliersRepo, exporter, extractionCache, logger)
	procurementpb.RegisterProcurementServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("procurement-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
