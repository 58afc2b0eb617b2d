// Package database opens the MySQL pool every repository runs on.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// dsn builds the connection string. parseTime makes DATETIME columns scan
// into time.Time, and loc=UTC keeps inward timestamps comparable across
// stores in different timezones. An empty password drops the colon so the
// DSN stays valid for passwordless dev databases.
func dsn(user, pass, host, port, name string) string {
	cred := user
	if pass != "" {
		cred = user + ":" + pass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cred, host, port, name)
}

// Open connects to MySQL, applies pool limits and verifies the connection
// with a short ping. The pool is sized for the portal's traffic shape:
// short CRUD queries from dashboard screens, no long-running reports.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(user, pass, host, port, name))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
