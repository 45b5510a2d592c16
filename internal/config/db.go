package config

import "time"

// DBPoolConfig holds the connection pool and startup knobs for the
// MySQL pool.  ConnectAttempts and ConnectRetryDelay govern the
// initial ping: in containerized deployments the service regularly
// starts before the database finishes coming up.
type DBPoolConfig struct {
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	PingTimeout       time.Duration
	ConnectAttempts   int
	ConnectRetryDelay time.Duration
}

// LoadDBPoolConfig reads the DB_* pool variables and normalizes them,
// falling back to defaults sized for a single service instance.
func LoadDBPoolConfig() DBPoolConfig {
	cfg := DBPoolConfig{
		MaxOpenConns:      envInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:      envInt("DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime:   envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		PingTimeout:       envDur("DB_PING_TIMEOUT", 5*time.Second),
		ConnectAttempts:   envInt("DB_CONNECT_ATTEMPTS", 5),
		ConnectRetryDelay: envDur("DB_CONNECT_RETRY_DELAY", 2*time.Second),
	}
	if cfg.MaxOpenConns < 1 {
		cfg.MaxOpenConns = 1
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		cfg.MaxIdleConns = cfg.MaxOpenConns
	}
	if cfg.ConnMaxLifetime <= 0 {
		cfg.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = 5 * time.Second
	}
	if cfg.ConnectAttempts < 1 {
		cfg.ConnectAttempts = 1
	}
	if cfg.ConnectRetryDelay < 0 {
		cfg.ConnectRetryDelay = 0
	}
	return cfg
}
