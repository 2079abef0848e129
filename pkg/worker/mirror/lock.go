package mirror

import (
	"time"

	"github.com/garyburd/redigo/redis"
	redsync "gopkg.in/redsync.v1"
)

//go:generate mockgen -package mirror -source lock.go -destination lock_mock.go

type Mutex interface {
	Lock() error
	Unlock() bool
}

// Locker serializes mirroring of one pull request between workers sharing the repositories.
type Locker interface {
	NewMutex(name string) Mutex
}

type RedisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

var _ Locker = &RedisLocker{}

func NewRedisLocker(pool *redis.Pool, expiry time.Duration) *RedisLocker {
	return &RedisLocker{
		rs:     redsync.New([]redsync.Pool{pool}),
		expiry: expiry,
	}
}

func (l RedisLocker) NewMutex(name string) Mutex {
	return l.rs.NewMutex(name, redsync.SetExpiry(l.expiry))
}

type NopLocker struct{}

var _ Locker = NopLocker{}

func (NopLocker) NewMutex(string) Mutex {
	return nopMutex{}
}

type nopMutex struct{}

func (nopMutex) Lock() error {
	return nil
}

func (nopMutex) Unlock() bool {
	return true
}
