package config_test

import (
	"fmt"

	"github.com/wonny/creditrisk/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	fmt.Printf("Server running on port: %s\n", cfg.Port)
	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("Risk-free rate: %.4f\n", cfg.Analysis.RiskFreeRate)
	fmt.Printf("Horizon (years): %.1f\n", cfg.Analysis.HorizonYears)
}
