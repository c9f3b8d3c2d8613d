package db

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"shopping-samples/internal/config"
	"shopping-samples/internal/logger"
)

// dataSource returns the database/sql driver name and DSN for cfg.
func dataSource(cfg *config.Config) (string, string, error) {
	addr := net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	switch cfg.DBDriver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		mc.TLSConfig = "preferred"
		return "mysql", mc.FormatDSN(), nil
	case "pgx":
		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.DBUser, cfg.DBPassword),
			Host:   addr,
			Path:   "/" + cfg.DBName,
		}
		return "pgx", u.String(), nil
	}
	return "", "", fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}

func ConnectDB(cfg *config.Config) (*sql.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connected", "driver", driver, "host", cfg.DBHost)
	return db, nil
}
