package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing against a real database.
// Tests using it are skipped unless TEST_DB_HOST is set.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the test database and migrates it
func NewTestDBManager(t *testing.T, log coreport.Logger) *TestDBManager {
	t.Helper()

	host, ok := os.LookupEnv("TEST_DB_HOST")
	if !ok || host == "" {
		t.Skip("TEST_DB_HOST is not set")
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Host = host
	config.Port = getEnvIntOrDefault("TEST_DB_PORT", 5432)
	config.Username = getEnvOrDefault("TEST_DB_USERNAME", "postgres")
	config.Password = getEnvOrDefault("TEST_DB_PASSWORD", "postgres")
	config.Database = getEnvOrDefault("TEST_DB_DATABASE", "logcat_test")
	config.SSLMode = getEnvOrDefault("TEST_DB_SSL_MODE", "disable")
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.MonitorInterval = 0
	config.QueryTimeout = 5 * time.Second

	m := &TestDBManager{
		Manager:      NewManager(config, log, timeProvider),
		Config:       config,
		TimeProvider: timeProvider,
	}

	ctx := context.Background()
	if _, err := m.Manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })

	if err := m.Manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	m.TruncateAllTables(t)

	return m
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables empties the override table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec("TRUNCATE TABLE " + model.TagOverride{}.TableName()).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
