package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/model"
)

// Manager manages the connection to the override store
type Manager struct {
	config            *Config
	db                *gorm.DB
	log               coreport.Logger
	errorMapper       *ErrorMapper
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, log coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		log:          log,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the connection, retrying up to RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	_, _ = m.log.Infof(LogTag, "Connecting to %s at %s:%d/%s", m.config.Driver, m.config.Host, m.config.Port, m.config.Database)

	var err error
	var gormDB *gorm.DB

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			_, _ = m.log.Warnf(LogTag, "Retrying database connection %d/%d in %s", attempt+1, m.config.RetryAttempts, m.config.RetryDelay)
			select {
			case <-m.timeProvider.After(coreport.Duration(m.config.RetryDelay)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger: NewDatabaseLogger(m.log, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			PrepareStmt: true,
		})
		if err == nil {
			break
		}

		_, _ = m.log.Errorf(LogTag, "Failed to connect to database on attempt %d: %v", attempt+1, err)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	_, _ = m.log.Infof(LogTag, "Connected to database, max_open_conns=%d max_idle_conns=%d query_timeout=%s",
		m.config.MaxOpenConns, m.config.MaxIdleConns, m.config.QueryTimeout)

	m.db = gormDB

	if m.config.MonitorInterval > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(m.stats, m.log, m.timeProvider)
		if err := m.connectionMonitor.Start(m.config.MonitorInterval); err != nil {
			_, _ = m.log.Warnf(LogTag, "Failed to start connection pool monitoring: %v", err)
		}
	}

	return m.db, nil
}

// Migrate creates or updates the override table
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return errors.New("database is not connected")
	}
	if err := m.db.WithContext(ctx).AutoMigrate(&model.TagOverride{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", model.TagOverride{}.TableName(), err)
	}
	return nil
}

// Ping checks the database is reachable within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return errors.New("database is not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return m.errorMapper.MapError(err, "ping")
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return m.errorMapper.MapError(sqlDB.PingContext(ctx), "ping")
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	_, _ = m.log.Infof(LogTag, "Closing database connection")

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// PoolMetrics returns the last sampled pool metrics
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

func (m *Manager) stats() (sql.DBStats, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return sql.DBStats{}, err
	}
	return sqlDB.Stats(), nil
}
