package fsxredis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abraxas-365/jobboard/pkg/fsx"
	"github.com/go-redis/redis/v8"
)

// RedisFileSystem stores each path as a plain string key under a prefix
type RedisFileSystem struct {
	client *redis.Client
	prefix string
}

// NewRedisFileSystem creates a Redis backed file system. Keys are written as
// "<prefix>:<path>" when prefix is set.
func NewRedisFileSystem(client *redis.Client, prefix string) *RedisFileSystem {
	return &RedisFileSystem{
		client: client,
		prefix: prefix,
	}
}

func (fs *RedisFileSystem) key(p string) string {
	if fs.prefix == "" {
		return p
	}
	return fs.prefix + ":" + p
}

func (fs *RedisFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	data, err := fs.client.Get(ctx, fs.key(p)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("redis get %s: %w", p, fsx.ErrNotExist)
		}
		return nil, fmt.Errorf("redis get %s: %w", p, err)
	}
	return data, nil
}

func (fs *RedisFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	if err := fs.client.Set(ctx, fs.key(p), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", p, err)
	}
	return nil
}

func (fs *RedisFileSystem) Exists(ctx context.Context, p string) (bool, error) {
	n, err := fs.client.Exists(ctx, fs.key(p)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", p, err)
	}
	return n > 0, nil
}

var _ fsx.FileSystem = (*RedisFileSystem)(nil)
