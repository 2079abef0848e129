package redis

import (
	"fmt"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/golangci/golangci-mirror/internal/shared/config"
	"github.com/pkg/errors"
)

var ErrNotConfigured = errors.New("no REDIS_URL or REDIS_{HOST,PASSWORD} in config")

func GetPool(cfg config.Config) (*redis.Pool, error) {
	redisURL, err := GetURL(cfg)
	if err != nil {
		return nil, err
	}

	return &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		TestOnBorrow: func(c redis.Conn, _ time.Time) error {
			_, pingErr := c.Do("PING")
			return pingErr
		},
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(redisURL)
		},
	}, nil
}

func GetURL(cfg config.Config) (string, error) {
	if redisURL := cfg.GetString("REDIS_URL"); redisURL != "" {
		return redisURL, nil
	}

	host := cfg.GetString("REDIS_HOST")
	password := cfg.GetString("REDIS_PASSWORD")
	if host == "" || password == "" {
		return "", ErrNotConfigured
	}

	return fmt.Sprintf("redis://h:%s@%s", password, host), nil
}

// Ping checks the pool can reach the server, it's used at startup to fail fast.
func Ping(pool *redis.Pool) error {
	conn := pool.Get()
	defer conn.Close()

	if _, err := conn.Do("PING"); err != nil {
		return errors.Wrap(err, "redis ping failed")
	}

	return nil
}
