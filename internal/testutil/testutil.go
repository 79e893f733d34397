package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/neonauction/auction-server/internal/api"
	"github.com/neonauction/auction-server/internal/archive"
	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/config"
	"github.com/neonauction/auction-server/internal/ws"
)

// TestDB manages a testcontainers PostgreSQL instance for archive tests.
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB starts a PostgreSQL container, connects and migrates the archive
// schema. The container is terminated via t.Cleanup.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_auction"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&archive.ArchivedRoom{}, &archive.ArchivedTeam{}); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container.
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		tdb.Container.Terminate(context.Background())
	}
}

// Truncate clears the archive tables for test isolation.
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	for _, table := range []string{"archived_teams", "archived_rooms"} {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing.
func TestConfig() *config.Config {
	return &config.Config{
		Port:                "0",
		Environment:         "test",
		AllowedOrigins:      []string{"*"},
		DefaultTimerSeconds: 15,
		BidIncrementLakhs:   20,
		BudgetLakhs:         12000,
		ResolveDelay:        4 * time.Second,
		SelectionTimeout:    10 * time.Minute,
		RoomIdleTTL:         2 * time.Hour,
		JanitorInterval:     time.Minute,
	}
}

// TestServer wires a full HTTP server around an in-memory store driven by a
// fake clock, so handler tests can advance time deterministically.
type TestServer struct {
	Server *httptest.Server
	Store  *auction.Store
	Clock  *clockwork.FakeClock
	Hub    *ws.Hub
	Config *config.Config
}

// NewTestServer builds the complete stack minus the archive database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()
	log := zerolog.Nop()
	clock := clockwork.NewFakeClock()
	hub := ws.NewHub(log)

	opts := auction.DefaultOptions()
	opts.DefaultTimerSeconds = cfg.DefaultTimerSeconds
	opts.BidIncrementLakhs = cfg.BidIncrementLakhs
	opts.BudgetLakhs = cfg.BudgetLakhs
	opts.ResolveDelay = cfg.ResolveDelay
	opts.SelectionTimeout = cfg.SelectionTimeout
	opts.IdleTTL = cfg.RoomIdleTTL

	store := auction.NewStore(opts, clock, hub, nil, log)
	router := api.NewRouter(store, hub, cfg, log)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server: server,
		Store:  store,
		Clock:  clock,
		Hub:    hub,
		Config: cfg,
	}

	t.Cleanup(server.Close)

	return ts
}

// APIURL returns the full API URL for a given path.
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}
