package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisImage is the image started by StartRedisContainer
const RedisImage = "redis:7-alpine"

// StartRedisContainer starts a throwaway Redis server and returns a client for it.
// The test is skipped when Docker is not available. When MODMANAGER_TEST_REDIS_ADDR
// is set that server is used instead and database 15 is flushed around the test.
func StartRedisContainer(t *testing.T) redis.UniversalClient {
	t.Helper()
	ctx := context.Background()

	if addr := os.Getenv("MODMANAGER_TEST_REDIS_ADDR"); addr != "" {
		return connect(t, &redis.Options{Addr: addr, DB: 15}, true)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return connect(t, &redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())}, false)
}

func connect(t *testing.T, opts *redis.Options, flush bool) redis.UniversalClient {
	t.Helper()
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	if flush {
		require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")
	}

	t.Cleanup(func() {
		if flush {
			_ = client.FlushDB(context.Background()).Err()
		}
		_ = client.Close()
	})
	return client
}
