package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// ConnectionPoolMonitor samples the pool and warns when it runs low
type ConnectionPoolMonitor struct {
	stats        func() (sql.DBStats, error)
	log          coreport.Logger
	timeProvider coreport.TimeProvider

	mutex        sync.RWMutex
	metricsCache *ConnectionPoolMetrics
	stopOnce     sync.Once
	stopChan     chan struct{}
}

// NewConnectionPoolMonitor creates a monitor reading pool stats from stats
func NewConnectionPoolMonitor(stats func() (sql.DBStats, error), log coreport.Logger, timeProvider coreport.TimeProvider) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		stats:        stats,
		log:          log,
		timeProvider: timeProvider,
		stopChan:     make(chan struct{}),
	}
}

// Start collects once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-m.timeProvider.After(coreport.Duration(interval)):
				if err := m.collectMetrics(); err != nil {
					_, _ = m.log.Errorf(LogTag, "Failed to collect connection pool metrics: %v", err)
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last collected connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	stats, err := m.stats()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	m.mutex.Lock()
	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		_, _ = m.log.Warnf(LogTag, "Database connection pool nearly exhausted: in_use=%d max_open=%d idle=%d wait_count=%d wait_time=%s",
			stats.InUse, stats.MaxOpenConnections, stats.Idle, stats.WaitCount, stats.WaitDuration)
	}

	return nil
}
