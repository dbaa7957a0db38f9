package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(KeyPrefix + "weather:q=Paris").SetVal(`{"name":"Paris"}`)

		c := NewRedisCache(client)
		val, ok, err := c.Get(ctx, "weather:q=Paris")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"name":"Paris"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(KeyPrefix + "missing").RedisNil()

		c := NewRedisCache(client)
		val, ok, err := c.Get(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(KeyPrefix + "broken").SetErr(errors.New("connection refused"))

		c := NewRedisCache(client)
		_, ok, err := c.Get(ctx, "broken")

		assert.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestRedisCache_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectSet(KeyPrefix+"geocode:q=Oslo", "[]", 24*time.Hour).SetVal("OK")

		c := NewRedisCache(client)
		assert.NoError(t, c.Set(ctx, "geocode:q=Oslo", "[]", 24*time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectSet(KeyPrefix+"k", "v", time.Minute).SetErr(errors.New("readonly"))

		c := NewRedisCache(client)
		err := c.Set(ctx, "k", "v", time.Minute)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "readonly")
	})
}

func TestRedisCache_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	c := NewRedisCache(client)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestNoopCache(t *testing.T) {
	var c Cache = NoopCache{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	val, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
	assert.NoError(t, c.Ping(ctx))
}
