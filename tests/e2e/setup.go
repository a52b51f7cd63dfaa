//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	schemaFile = "tests/e2e/testdata/schema.sql"
)

// hotelDatabase starts one postgres container per process and gives each caller
// a fresh database with the hotel schema and seed rooms.
func hotelDatabase(t *testing.T) config.DBConfig {
	t.Helper()
	postgresOnce.Do(startPostgres)
	require.NoError(t, postgresErr, "failed to start postgres container")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dbCfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   "hotel_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		SSLMode:  "disable",
		TimeZone: "Europe/Sofia",
	}

	admin := dbCfg
	admin.DBName = "postgres"
	adminPool, _, err := db.Connect(admin)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbCfg.DBName)
	require.NoError(t, err, "failed to create test database")

	schema, err := os.ReadFile(findFromModuleRoot(t, schemaFile))
	require.NoError(t, err)

	pool, _, err := db.Connect(dbCfg)
	require.NoError(t, err, "database connection failed")
	defer pool.Close()
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "schema setup failed")

	return dbCfg
}

func startPostgres() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Cmd: []string{"postgres", "-c", "fsync=off"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "hotel-e2e"},
		},
		Started: true,
	})
}

// findFromModuleRoot resolves rel against the directory holding go.mod.
func findFromModuleRoot(t *testing.T, rel string) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, rel)
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above the test directory")
		dir = parent
	}
}

// hotelApp boots the production fx graph against the test database.
func hotelApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.InfraModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// ------------------------------------------------------------
// shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	s.Config = config.NewTestConfig()
	s.Config.DB = hotelDatabase(t)

	pool, _, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(pool.Close)
	s.DB = pool

	require.NoError(t, dbtest.SeedReferenceData(pool), "seeding reference data failed")
	s.Router = hotelApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}

// AdminToken signs a token the admin listings accept.
func (s *SharedSuite) AdminToken() string {
	return s.token(jwt.RoleAdmin)
}

func (s *SharedSuite) GuestToken() string {
	return s.token("guest")
}

func (s *SharedSuite) token(role string) string {
	s.T().Helper()
	service := jwt.NewService(s.Config.JWT.Secret, time.Hour)
	token, err := service.GenerateToken("e2e-"+role, role)
	require.NoError(s.T(), err)
	return token
}
