package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_purchase/internal/platform/cache"
	"github.com/srgjo27/ticket_purchase/internal/platform/database"
)

type Config struct {
	Port            int
	Debug           bool
	ShutdownTimeout time.Duration
	Database        database.Config
	Redis           cache.Config
}

// LoadEnv sets variables from a .env style file. Variables already set to a
// non-empty value in the environment are left untouched.
func LoadEnv(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		if current, exists := os.LookupEnv(key); exists && current != "" {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}

	return scanner.Err()
}

func Load(envFile string) (Config, error) {
	if err := LoadEnv(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
		logrus.Infof("File %s not found, using OS environment.", envFile)
	}

	var errs []error

	port, err := intEnv("APP_PORT", 8080)
	errs = append(errs, err)

	debug, err := boolEnv("APP_DEBUG", false)
	errs = append(errs, err)

	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	errs = append(errs, err)

	dbMaxRetries, err := intEnv("DB_MAX_RETRIES", 10)
	errs = append(errs, err)

	redisDB, err := intEnv("REDIS_DB", 0)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return Config{
		Port:            port,
		Debug:           debug,
		ShutdownTimeout: shutdownTimeout,
		Database: database.Config{
			Host:       stringEnv("DB_HOST", "localhost"),
			Port:       stringEnv("DB_PORT", "5432"),
			User:       stringEnv("DB_USER", "postgres"),
			Password:   stringEnv("DB_PASSWORD", ""),
			DBName:     stringEnv("DB_NAME", "ticket_purchase"),
			MaxRetries: dbMaxRetries,
		},
		Redis: cache.Config{
			Host: stringEnv("REDIS_HOST", "localhost"),
			Port: stringEnv("REDIS_PORT", "6379"),
			DB:   redisDB,
		},
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
