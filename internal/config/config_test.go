package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"QUEUE_PENDING_CEILING",
		"QUEUE_PENDING_HIGH",
		"QUEUE_DEFAULT_LIMIT",
		"NOTIFICATION_QUEUE_SIZE",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBUser != "postgres" {
			t.Errorf("DBUser = %v, want postgres", cfg.DBUser)
		}
		if cfg.DBName != "kb_change_control" {
			t.Errorf("DBName = %v, want kb_change_control", cfg.DBName)
		}
		if cfg.DBSSLMode != "disable" {
			t.Errorf("DBSSLMode = %v, want disable", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 5 {
			t.Errorf("DBMinConns = %v, want 5", cfg.DBMinConns)
		}
		if cfg.QueuePendingCeiling != 10 {
			t.Errorf("QueuePendingCeiling = %v, want 10", cfg.QueuePendingCeiling)
		}
		if cfg.QueuePendingHigh != 5 {
			t.Errorf("QueuePendingHigh = %v, want 5", cfg.QueuePendingHigh)
		}
		if cfg.QueueDefaultLimit != 200 {
			t.Errorf("QueueDefaultLimit = %v, want 200", cfg.QueueDefaultLimit)
		}
		if cfg.NotificationQueueSize != 64 {
			t.Errorf("NotificationQueueSize = %v, want 64", cfg.NotificationQueueSize)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "testuser")
		os.Setenv("DB_PASSWORD", "testpass")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("DB_SSL_MODE", "require")
		os.Setenv("DB_MAX_CONNS", "50")
		os.Setenv("DB_MIN_CONNS", "10")
		os.Setenv("QUEUE_PENDING_CEILING", "20")
		os.Setenv("QUEUE_PENDING_HIGH", "8")
		os.Setenv("QUEUE_DEFAULT_LIMIT", "100")
		os.Setenv("NOTIFICATION_QUEUE_SIZE", "128")
		os.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBUser != "testuser" {
			t.Errorf("DBUser = %v, want testuser", cfg.DBUser)
		}
		if cfg.DBPassword != "testpass" {
			t.Errorf("DBPassword = %v, want testpass", cfg.DBPassword)
		}
		if cfg.DBName != "testdb" {
			t.Errorf("DBName = %v, want testdb", cfg.DBName)
		}
		if cfg.DBSSLMode != "require" {
			t.Errorf("DBSSLMode = %v, want require", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 10 {
			t.Errorf("DBMinConns = %v, want 10", cfg.DBMinConns)
		}
		if cfg.QueuePendingCeiling != 20 {
			t.Errorf("QueuePendingCeiling = %v, want 20", cfg.QueuePendingCeiling)
		}
		if cfg.QueuePendingHigh != 8 {
			t.Errorf("QueuePendingHigh = %v, want 8", cfg.QueuePendingHigh)
		}
		if cfg.QueueDefaultLimit != 100 {
			t.Errorf("QueueDefaultLimit = %v, want 100", cfg.QueueDefaultLimit)
		}
		if cfg.NotificationQueueSize != 128 {
			t.Errorf("NotificationQueueSize = %v, want 128", cfg.NotificationQueueSize)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("rejects inverted queue cutoffs", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("QUEUE_PENDING_CEILING", "3")
		os.Setenv("QUEUE_PENDING_HIGH", "5")
		defer os.Unsetenv("QUEUE_PENDING_CEILING")
		defer os.Unsetenv("QUEUE_PENDING_HIGH")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for QUEUE_PENDING_HIGH above QUEUE_PENDING_CEILING")
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
	})
}
