package logger_test

import (
	"errors"

	"github.com/wonny/creditrisk/pkg/config"
	"github.com/wonny/creditrisk/pkg/logger"
)

// Example_basic demonstrates basic logger usage
func Example_basic() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	log := logger.New(cfg)

	log.Info("Credit analysis service started")
	log.Infof("Analyzing %s", "AAPL")
}

// Example_withFields demonstrates structured logging with fields
func Example_withFields() {
	log := logger.New(&config.Config{
		Env:       "production",
		LogLevel:  "info",
		LogFormat: "json",
	})

	log.WithFields(map[string]interface{}{
		"ticker":         "AAPL",
		"score":          4.12,
		"recommendation": "favorable",
	}).Info("Analysis completed")

	log.WithError(errors.New("line item missing")).
		WithField("ticker", "XYZ").
		Error("Analysis failed")
}
