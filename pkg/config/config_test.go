package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8089" {
		t.Errorf("Expected Port to be 8089, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Analysis.RiskFreeRate != 0.05 {
		t.Errorf("Expected RiskFreeRate to be 0.05, got %v", cfg.Analysis.RiskFreeRate)
	}

	if cfg.Analysis.HorizonYears != 1.0 {
		t.Errorf("Expected HorizonYears to be 1.0, got %v", cfg.Analysis.HorizonYears)
	}

	if cfg.Redis.Enabled {
		t.Error("Expected Redis to be disabled by default")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("RISK_FREE_RATE", "0.0425")
	t.Setenv("HORIZON_YEARS", "2.5")
	t.Setenv("YAHOO_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Analysis.RiskFreeRate != 0.0425 {
		t.Errorf("Expected RiskFreeRate to be 0.0425, got %v", cfg.Analysis.RiskFreeRate)
	}

	if cfg.Analysis.HorizonYears != 2.5 {
		t.Errorf("Expected HorizonYears to be 2.5, got %v", cfg.Analysis.HorizonYears)
	}

	if cfg.Yahoo.Timeout != 5*time.Second {
		t.Errorf("Expected Yahoo timeout to be 5s, got %v", cfg.Yahoo.Timeout)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel to be warn, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateNonPositiveHorizon(t *testing.T) {
	t.Setenv("HORIZON_YEARS", "0")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when HORIZON_YEARS is 0, got nil")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "2h")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.035")

	if value := getEnvAsFloat("TEST_FLOAT", 0.05); value != 0.035 {
		t.Errorf("Expected value to be 0.035, got %v", value)
	}

	t.Setenv("TEST_FLOAT", "not-a-number")
	if value := getEnvAsFloat("TEST_FLOAT", 0.05); value != 0.05 {
		t.Errorf("Expected fallback 0.05, got %v", value)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}
