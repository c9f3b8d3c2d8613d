package config

import "os"

const EndpointEnvVar = "GOOGLE_SHOPPING_SAMPLES_ENDPOINT"

// Config holds the settings read from the environment. A .env file, when
// present, is loaded into the environment before NewConfig runs.
type Config struct {
	Endpoint   string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func NewConfig() *Config {
	cfg := &Config{
		Endpoint:   os.Getenv(EndpointEnvVar),
		DBDriver:   os.Getenv("REPORTS_DB_DRIVER"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "mysql"
	}
	return cfg
}

// ReportsEnabled reports whether report rows should be persisted.
func (c *Config) ReportsEnabled() bool {
	return c.DBHost != ""
}
