// Package database opens and verifies the MySQL connection pool.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/navidh/exam-center-scheduling/internal/config"
)

// Open connects to MySQL, applies the pool configuration and verifies
// the connection.  parseTime maps DATETIME columns onto time.Time and
// loc=UTC keeps every stored timestamp in UTC.  Startup regularly
// races the database coming up, so the initial ping is retried up to
// pool.ConnectAttempts times before giving up; each ping runs under
// its own timeout.
func Open(user, pass, host, port, name string, pool config.DBPoolConfig) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	var lastErr error
	for attempt := 1; attempt <= pool.ConnectAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(pool.ConnectRetryDelay)
		}
		ctx, cancel := context.WithTimeout(context.Background(), pool.PingTimeout)
		lastErr = db.PingContext(ctx)
		cancel()
		if lastErr == nil {
			return db, nil
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", pool.ConnectAttempts, lastErr)
}
