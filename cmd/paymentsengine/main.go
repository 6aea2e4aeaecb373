package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/punchamoorthee/paymentsengine/internal/config"
	"github.com/punchamoorthee/paymentsengine/internal/csvio"
	"github.com/punchamoorthee/paymentsengine/internal/engine"
	"github.com/punchamoorthee/paymentsengine/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		logger.Fatal("usage: paymentsengine <transactions.csv>")
	}

	input, err := os.Open(os.Args[1])
	if err != nil {
		logger.Fatal("open input file", zap.Error(err))
	}
	defer input.Close()

	eng := engine.New()
	recorder := metrics.NewRecorder()
	processor := csvio.NewProcessor(eng, logger, recorder)

	if err := processor.Run(input); err != nil {
		logger.Fatal("process transactions", zap.Error(err))
	}

	if err := csvio.WriteAccounts(os.Stdout, eng); err != nil {
		logger.Fatal("write account report", zap.Error(err))
	}

	summary, err := recorder.Summary()
	if err != nil {
		logger.Fatal("gather metrics", zap.Error(err))
	}
	logger.Info("processing complete",
		zap.Uint64("accepted", summary.Accepted),
		zap.Uint64("rejected", summary.Rejected),
		zap.Uint64("malformed_rows", summary.Malformed),
		zap.Int("clients", len(eng.Accounts())),
	)
}

// newLogger builds a stderr logger; stdout is reserved for the account
// report.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Env == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
