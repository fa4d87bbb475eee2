package main

import (
	"os"

	"github.com/iamNilotpal/checksums/config"
	"github.com/iamNilotpal/checksums/pkg/checksum"
	"github.com/iamNilotpal/checksums/pkg/errors"
	"github.com/iamNilotpal/checksums/pkg/logger"
)

func main() {
	cfg := config.DefaultConfig()

	var loadErr error
	if len(os.Args) > 1 {
		cfg, loadErr = config.LoadConfig(os.Args[1])
		if loadErr != nil {
			cfg = config.DefaultConfig()
		}
	}

	log := logger.New(
		"checksums",
		logger.WithLevel(cfg.Logging.ZapLevel()),
		logger.WithDevelopment(cfg.Logging.Development),
	)
	defer log.Sync()

	if loadErr != nil {
		switch {
		case checksum.IsUnrecognizedAlgorithm(loadErr):
			ue := checksum.AsUnrecognizedAlgorithm(loadErr)
			log.Errorw("load config error", "input", ue.Input, "error", loadErr)
		case errors.IsValidationError(loadErr):
			ve := errors.AsValidationError(loadErr)
			log.Errorw("load config error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		default:
			log.Errorw("load config error", "error", loadErr)
		}
		_ = log.Sync()
		os.Exit(1)
	}

	log.Infow(
		"algorithm resolved",
		"algorithm", cfg.Algorithm.String(),
		"aliases", checksum.Aliases(cfg.Algorithm),
		"digest_bytes", cfg.Algorithm.Size(),
		"hex_length", cfg.Algorithm.HexLen(),
	)
}
