package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"modelforge/internal/config"
)

// fileConfig mirrors config.Config with yaml-friendly field types
// (durations as strings).
type fileConfig struct {
	Server struct {
		Port         int    `yaml:"port"`
		ReadTimeout  string `yaml:"readTimeout"`
		WriteTimeout string `yaml:"writeTimeout"`
		IdleTimeout  string `yaml:"idleTimeout"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
		RunMigrations   bool   `yaml:"runMigrations"`
		MigrationsDir   string `yaml:"migrationsDir"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// LoadConfig reads a yaml config file. Used when CONFIG_FILE overrides the
// env-driven defaults of config.Load.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	readTimeout, err := parseDuration(fc.Server.ReadTimeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parsing readTimeout: %w", err)
	}
	writeTimeout, err := parseDuration(fc.Server.WriteTimeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parsing writeTimeout: %w", err)
	}
	idleTimeout, err := parseDuration(fc.Server.IdleTimeout, 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parsing idleTimeout: %w", err)
	}
	connMaxLifetime, err := parseDuration(fc.Database.ConnMaxLifetime, 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("parsing connMaxLifetime: %w", err)
	}

	return &config.Config{
		Server: config.ServerConfig{
			Port:         fc.Server.Port,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
			RunMigrations:   fc.Database.RunMigrations,
			MigrationsDir:   fc.Database.MigrationsDir,
		},
		Log: config.LogConfig{
			Level:  fc.Log.Level,
			Format: fc.Log.Format,
		},
	}, nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}
