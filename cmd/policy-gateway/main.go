package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/flightguard/internal/bootstrap"
	"github.com/goodnatureofminers/flightguard/internal/contracts"
	"github.com/goodnatureofminers/flightguard/internal/transport"
)

type config struct {
	Addr             string `long:"addr" env:"POLICY_GATEWAY_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr         string `long:"rest-addr" env:"POLICY_GATEWAY_REST_ADDR" description:"REST listen address" default:":8001"`
	RPCURL           string `long:"rpc-url" env:"FLIGHTGUARD_RPC_URL" description:"Ethereum JSON-RPC endpoint" required:"true"`
	ChainID          uint64 `long:"chain-id" env:"FLIGHTGUARD_CHAIN_ID" description:"Expected chain id, overrides the deployments file"`
	Deployments      string `long:"deployments" env:"FLIGHTGUARD_DEPLOYMENTS" description:"Development only: YAML file with contract addresses for a non-default chain_id"`
	Workers          int    `long:"workers" env:"FLIGHTGUARD_WORKERS" description:"Concurrent policy record reads" default:"8"`
	RPCRPS           int    `long:"rpc-rps" env:"FLIGHTGUARD_RPC_RPS" description:"Policy read requests per second, 0 disables throttling"`
	UnresolvedStatus string `long:"unresolved-status" env:"FLIGHTGUARD_UNRESOLVED_STATUS" description:"Status of policies neither active nor paid out (expired|pending)" default:"expired"`
	LogJSON          bool   `long:"log-json" env:"FLIGHTGUARD_LOG_JSON" description:"Log as JSON"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := bootstrap.NewLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("policy gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	registry, err := contracts.LoadWithOverride(cfg.Deployments)
	if err != nil {
		return err
	}
	client, closeClient, err := bootstrap.DialLedger(ctx, cfg.RPCURL, registry.Network(), bootstrap.ExpectedChainID(cfg.ChainID, registry))
	if err != nil {
		return err
	}
	defer closeClient()

	binding, err := bootstrap.PolicyBinding(registry, client, 0)
	if err != nil {
		return err
	}
	queries, err := bootstrap.NewQueryService(binding, registry, bootstrap.QueryConfig{
		Workers:          cfg.Workers,
		RPS:              cfg.RPCRPS,
		UnresolvedStatus: cfg.UnresolvedStatus,
	}, logger)
	if err != nil {
		return err
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	grpc_health_v1.RegisterHealthServer(grpcServer, transport.NewHealthHandler(client, bootstrap.ExpectedChainID(cfg.ChainID, registry), logger))
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("GRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	healthConn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial health service: %w", err)
	}
	defer func() {
		_ = healthConn.Close()
	}()

	gw := gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(grpc_health_v1.NewHealthClient(healthConn)),
	)
	if err := transport.NewPolicyHandler(queries, registry, logger).Register(gw); err != nil {
		return fmt.Errorf("register policy handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.RestAddr),
		zap.String("network", string(registry.Network())),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
