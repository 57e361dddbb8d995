package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyHist/internal/infrastructure/redis"
	"lizzyHist/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и чистит базу.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	cli, err := redis.New(&redis.Config{
		Host: redisContainer.Host,
		Port: redisContainer.Port,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	require.NoError(t, cli.FlushDB(context.Background()).Err(), "не удалось очистить базу")

	t.Cleanup(func() {
		cli.Close()
	})

	return redis.NewCache(cli, newTestLogger())
}

func TestRedisCache_SetGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "5 + 10", 15))

	value, found, err := cache.Get(ctx, "5 + 10")
	require.NoError(t, err)
	assert.True(t, found, "значение должно быть найдено")
	assert.Equal(t, 15.0, value)
}

func TestRedisCache_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)

	_, found, err := cache.Get(context.Background(), "нет такого ключа")
	require.NoError(t, err, "отсутствие ключа не считается ошибкой")
	assert.False(t, found)
}

func TestRedisCache_Overwrite(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "2 ^ 3", 8))
	require.NoError(t, cache.Set(ctx, "2 ^ 3", 9))

	value, found, err := cache.Get(ctx, "2 ^ 3")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 9.0, value, "повторная запись перезаписывает значение")
}

func TestRedisCache_FloatPrecision(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	// Дробный результат должен пережить round-trip без потери точности.
	const want = 0.30000000000000004

	require.NoError(t, cache.Set(ctx, "0.1 + 0.2", want))

	value, found, err := cache.Get(ctx, "0.1 + 0.2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, value)
}
