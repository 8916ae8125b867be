package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/seatledger/config"
	"github.com/Domenick1991/seatledger/internal/bootstrap"
	"github.com/Domenick1991/seatledger/internal/logging"
	"github.com/Domenick1991/seatledger/internal/repository"
	"github.com/Domenick1991/seatledger/internal/service/ledger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightRepo := repository.NewFlightRepository()

	opts := []ledger.LedgerServiceOption{
		ledger.WithOperationLogger(logging.NewOperationLogger(logger)),
	}
	if cfg.Booking.StrictCancellation {
		opts = append(opts, ledger.WithStrictCancellation())
	}
	ledgerService := ledger.NewLedgerService(flightRepo, opts...)

	if err := bootstrap.Run(ctx, cfg, ledgerService, logger); err != nil {
		logger.Fatal("booking session failed", zap.Error(err))
	}
}
