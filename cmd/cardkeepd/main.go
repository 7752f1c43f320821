package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	cardspb "github.com/cardkeep/cardkeep/gen/proto/cards/v1"
	"github.com/cardkeep/cardkeep/internal/async"
	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/export"
	"github.com/cardkeep/cardkeep/internal/ingest"
	"github.com/cardkeep/cardkeep/internal/ocr"
	"github.com/cardkeep/cardkeep/internal/pipeline"
	repo "github.com/cardkeep/cardkeep/internal/repository"
	svc "github.com/cardkeep/cardkeep/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
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

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	contactsRepo := repo.NewContactRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:         cfg.OCR.Tesseract,
		TesseractLang:     cfg.OCR.TesseractLang,
		TessdataDir:       cfg.OCR.TessdataDir,
		AcceleratedBinary: cfg.OCR.AcceleratedBinary,
		HeicConverter:     cfg.OCR.HeicConverter,
		PSM:               cfg.OCR.PSM,
		ArtifactCacheDir:  cfg.OCR.ArtifactCacheDir,
	}, logger)

	pipe := pipeline.NewPipeline(jobsRepo, extractor, logger)
	exporter := export.NewService(contactsRepo, logger)

	scanSvc := svc.NewScanService(pipe, logger)
	contactsSvc := svc.NewContactsService(contactsRepo, exporter, logger)
	cardspb.RegisterCardsServiceServer(grpcServer, svc.NewCardsServer(scanSvc, contactsSvc))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	queue := async.NewScanQueue(pipe, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	// Optional drop-directory watcher: images landing under WATCH_DIRS get
	// scanned without an RPC.
	if len(cfg.Ingest.WatchRoots) > 0 {
		paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchRoots,
			InitialScan: cfg.Ingest.InitialScan,
			Debounce:    cfg.Ingest.Debounce,
		})
		if err != nil {
			logger.Error("failed to start drop-dir watcher", "roots", cfg.Ingest.WatchRoots, "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case p, ok := <-paths:
					if !ok {
						return
					}
					if err := queue.Enqueue(ctx, async.Job{SourcePath: p, SubmittedAt: time.Now()}); err != nil {
						logger.Error("enqueue watched file failed", "path", p, "error", err)
					}
				case werr, ok := <-watchErrs:
					if ok && werr != nil {
						logger.Error("watcher error", "error", werr)
					}
				}
			}
		}()
		logger.Info("watching drop directories", "roots", cfg.Ingest.WatchRoots)
	}

	logger.Info("cardkeepd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
