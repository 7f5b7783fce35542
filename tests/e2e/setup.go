//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"open-classrooms/cmd/bootstrap"
	"open-classrooms/cmd/bootstrap/components"
	"open-classrooms/internal/pkg/config"
	"open-classrooms/tests/common/redistest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// FakeUpstream serves the scheduling source API from a test HTTP server.
type FakeUpstream struct {
	Server  *httptest.Server
	mu      sync.Mutex
	payload map[string]any
	failing atomic.Bool
	calls   atomic.Int64
}

func newFakeUpstream() *FakeUpstream {
	f := &FakeUpstream{payload: map[string]any{"bookings": map[string]any{}}}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		if f.failing.Load() {
			http.Error(w, "scheduling backend unavailable", http.StatusBadGateway)
			return
		}
		if r.URL.Query().Get("date") == "" {
			http.Error(w, "missing date", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.payload)
	}))
	return f
}

func (f *FakeUpstream) SetPayload(p map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payload = p
}

func (f *FakeUpstream) SetFailing(failing bool) {
	f.failing.Store(failing)
}

func (f *FakeUpstream) Calls() int64 {
	return f.calls.Load()
}

func (f *FakeUpstream) Reset() {
	f.SetFailing(false)
	f.SetPayload(map[string]any{"bookings": map[string]any{}})
	f.calls.Store(0)
}

// ------------------------------------------------------------
// Per-process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*redis.Client, *FakeUpstream, *gin.Engine, config.Config) {
	redisInfo := startContainers(t)

	upstream := newFakeUpstream()
	t.Cleanup(upstream.Server.Close)

	cfg := createTestConfig(redisInfo, upstream.Server.URL)

	router, client, app := buildE2EApp(cfg)
	require.NotNil(t, router, "Failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"redis_host", redisInfo.Host,
		"redis_port", redisInfo.Port.Port())

	return client, upstream, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "Failed to get Redis container address")

	return redisInfo
}

// ------------------------------------------------------------
// Builds the application for E2E tests.
// Returns router, the app's redis client, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *redis.Client, *fx.App) {
	var router *gin.Engine
	var client *redis.Client

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.CatalogModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &client),

		// silence fx logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, client, app
}

func createTestConfig(redisInfo ContainerInfo, upstreamURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Redis.URL = fmt.Sprintf("redis://%s:%s/0", redisInfo.Host, redisInfo.Port.Port())
	testConfig.Redis.PingAttempts = 5
	testConfig.Redis.PingInterval = 500 * time.Millisecond
	testConfig.Upstream.URL = upstreamURL + "/bookings"
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the Redis container once and reuse it
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd: []string{
				"redis-server",
				"--save", "", // no persistence
				"--appendonly", "no",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("Ready to accept connections"),
				wait.ForListeningPort("6379/tcp"),
			).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "Failed to start Redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("Failed to terminate Redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Setup shared by the E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Redis    *redis.Client
	Upstream *FakeUpstream
	Config   config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	client, upstream, router, cfg := setupE2EEnvironment(t)
	s.Redis = client
	s.Upstream = upstream
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.Redis, "Failed to set up Redis client")
	require.NotNil(t, s.Router, "Failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), redistest.ResetStore(s.Redis), "Failed to reset store state")
	s.Upstream.Reset()
}
