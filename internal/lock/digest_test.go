package lock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type guard interface {
	Acquire(ctx context.Context, digest string) (func(), bool, error)
}

// startContainer runs image and returns host:port for the exposed port.
func startContainer(t *testing.T, image, port string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{port + "/tcp"},
		WaitingFor:   wait.ForListeningPort(nat.Port(port + "/tcp")).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, mapped.Port())
}

// exerciseGuard runs the shared claim semantics against g, whose claims must
// expire after two seconds.
func exerciseGuard(t *testing.T, g guard) {
	ctx := context.Background()

	t.Run("second claim is refused until release", func(t *testing.T) {
		release, ok, err := g.Acquire(ctx, "digest-a")
		require.NoError(t, err)
		assert.True(t, ok)

		_, ok, err = g.Acquire(ctx, "digest-a")
		require.NoError(t, err)
		assert.False(t, ok)

		release()

		release2, ok, err := g.Acquire(ctx, "digest-a")
		require.NoError(t, err)
		assert.True(t, ok)
		release2()
	})

	t.Run("different digests do not contend", func(t *testing.T) {
		r1, ok1, err := g.Acquire(ctx, "digest-b")
		require.NoError(t, err)
		r2, ok2, err := g.Acquire(ctx, "digest-c")
		require.NoError(t, err)
		assert.True(t, ok1)
		assert.True(t, ok2)
		r1()
		r2()
	})

	t.Run("claim expires", func(t *testing.T) {
		stale, ok, err := g.Acquire(ctx, "digest-d")
		require.NoError(t, err)
		require.True(t, ok)

		time.Sleep(3 * time.Second)

		fresh, ok, err := g.Acquire(ctx, "digest-d")
		require.NoError(t, err)
		assert.True(t, ok)

		// the expired holder must not drop the new claim
		stale()
		_, ok, err = g.Acquire(ctx, "digest-d")
		require.NoError(t, err)
		assert.False(t, ok)
		fresh()
	})
}

func TestRedisDigestGuard(t *testing.T) {
	addr := startContainer(t, "redis:7.0-alpine", "6379")

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(context.Background()).Err())

	exerciseGuard(t, NewRedisDigestGuard(rdb, 2*time.Second, zap.NewNop()))
}

func TestMongoDigestGuard(t *testing.T) {
	addr := startContainer(t, "mongo:7.0", "27017")
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://"+addr))
	require.NoError(t, err)
	defer client.Disconnect(ctx)
	require.NoError(t, client.Ping(ctx, nil))

	g := NewMongoDigestGuard(client.Database("crowdfunding_test"), 2*time.Second, zap.NewNop())
	require.NoError(t, g.EnsureIndexes(ctx))

	exerciseGuard(t, g)
}
