package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// This file provides the Redis-backed store behind the conditions cache.
// The service caches exactly one kind of value, current weather
// conditions per coordinate cell, so the interface stays a thin JSON
// key/value store; cell keys, TTLs and decoding live in
// cache_helpers.go.

// ErrCacheMiss is returned by Get when the key is absent, so callers do
// not depend on the Redis client's sentinel.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the store the request path and the scheduler share: JSON
// values with a TTL, plus a full flush for the development reset
// endpoint.
type Cache interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Flush(ctx context.Context) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an already-connected Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Set marshals value to JSON and stores it under key for the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	p, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, p, expiration).Err()
}

// Get returns the raw JSON stored under key, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	return value, err
}

// Flush clears the whole cache database. Only the development reset
// endpoint uses this.
func (c *RedisCache) Flush(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}
