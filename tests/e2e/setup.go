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

	"stock-reservation/cmd/bootstrap"
	"stock-reservation/cmd/bootstrap/components"
	"stock-reservation/internal/domain/inventory"
	"stock-reservation/internal/infra/db"
	"stock-reservation/internal/infra/mongostore"
	"stock-reservation/internal/pkg/config"
	"stock-reservation/tests/common/builder"
	"stock-reservation/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	mongoContainerOnce sync.Once
	mongoTestContainer *mongodb.MongoDBContainer

	testUser     = "test"
	testPassword = "testpass"

	// AdminToken is what every e2e app expects in X-Admin-Token.
	AdminToken = "e2e-admin-token"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Backend hides how fixtures reach the store so one suite body runs on both.
type Backend interface {
	Name() string
	SeedInventory(t *testing.T, key inventory.Key, current, reserved int)
	InsertReservation(t *testing.T, b *builder.ReservationBuilder)
	Reset() error
}

type postgresBackend struct{ pool *pgxpool.Pool }

func (b postgresBackend) Name() string { return config.BackendPostgres }
func (b postgresBackend) SeedInventory(t *testing.T, key inventory.Key, current, reserved int) {
	dbtest.SeedInventory(t, b.pool, key, current, reserved)
}
func (b postgresBackend) InsertReservation(t *testing.T, rb *builder.ReservationBuilder) {
	dbtest.InsertReservation(t, b.pool, rb)
}
func (b postgresBackend) Reset() error { return dbtest.ResetDB(b.pool) }

type mongoBackend struct{ db *mongo.Database }

func (b mongoBackend) Name() string { return config.BackendMongo }
func (b mongoBackend) SeedInventory(t *testing.T, key inventory.Key, current, reserved int) {
	dbtest.SeedMongoInventory(t, b.db, key, current, reserved)
}
func (b mongoBackend) InsertReservation(t *testing.T, rb *builder.ReservationBuilder) {
	dbtest.InsertMongoReservation(t, b.db, rb)
}
func (b mongoBackend) Reset() error { return dbtest.ResetMongo(b.db) }

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupPostgresEnvironment(t *testing.T) (Backend, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	cfg := createTestConfig(config.BackendPostgres)
	cfg.DB = dbConfig

	router, app := buildE2EApp(cfg,
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(components.NewPostgresStores),
	)
	registerAppCleanup(t, app)

	slog.Info("E2E環境の準備が完了しました",
		"backend", config.BackendPostgres,
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return postgresBackend{pool: pool}, router, cfg
}

func setupMongoEnvironment(t *testing.T) (Backend, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uri, err := mongoTestContainer.ConnectionString(ctx)
	require.NoError(t, err, "MongoDBコンテナ情報の取得に失敗")

	cfg := createTestConfig(config.BackendMongo)
	cfg.Mongo.URI = withDirectConnection(uri)
	// プロセス毎に別データベース
	cfg.Mongo.Database = "inventory_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	client, disconnect, err := mongostore.Connect(ctx, cfg.Mongo)
	require.NoError(t, err, "MongoDB接続に失敗")
	database := client.Database(cfg.Mongo.Database)

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		if err := database.Drop(cleanupCtx); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", cfg.Mongo.Database, "error", err.Error())
		}
		_ = disconnect(cleanupCtx)
	})

	router, app := buildE2EApp(cfg,
		fx.Provide(func(logger *slog.Logger) (components.Stores, error) {
			return components.NewMongoStores(context.Background(), database, logger)
		}),
	)
	registerAppCleanup(t, app)

	slog.Info("E2E環境の準備が完了しました", "backend", config.BackendMongo, "database", cfg.Mongo.Database)

	return mongoBackend{db: database}, router, cfg
}

func withDirectConnection(uri string) string {
	if strings.Contains(uri, "directConnection") {
		return uri
	}
	if strings.Contains(uri, "?") {
		return uri + "&directConnection=true"
	}
	return strings.TrimSuffix(uri, "/") + "/?directConnection=true"
}

func registerAppCleanup(t *testing.T, app *fx.App) {
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
}

// ------------------------------------------------------------
// データベース準備関数
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// プロセス毎に違うスキーマ名を生成
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "") // ハイフンを除去してDB名として使用

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	// データベース作成をリトライ機構付きで実行
	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			// 指数バックオフ
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempts+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 40,
	}

	pool, cleanup, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	require.NotNil(t, pool, "データベース接続が nil です")
	t.Cleanup(cleanup)

	require.NoError(t, applyMigrations(t, pool), "データベースマイグレーションに失敗")

	return pool, dbConfig
}

func applyMigrations(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	migrationFiles := []string{
		"db/migrations/001_init.sql",
	}

	for _, file := range migrationFiles {
		// go test runs in the package dir, so walk up until the file shows up
		var (
			sqlContent []byte
			readErr    error
		)
		candidates := []string{
			file,
			filepath.Join("..", file),
			filepath.Join("..", "..", file),
			filepath.Join("..", "..", "..", file),
		}
		for _, cand := range candidates {
			sqlContent, readErr = os.ReadFile(cand)
			if readErr == nil {
				file = cand
				break
			}
		}
		if readErr != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, readErr)
		}

		up := string(sqlContent)
		if i := strings.Index(up, "-- +migrate Down"); i >= 0 {
			up = up[:i]
		}
		if _, err := pool.Exec(ctx, up); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}

		slog.Info("マイグレーション実行完了", "file", file)
	}

	return nil
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// storeOpts provides components.Stores for the chosen backend
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config, storeOpts ...fx.Option) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	opts := []fx.Option{
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.ObservabilityModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		// ログを無効にして起動
		fx.NopLogger,
	}
	opts = append(opts, storeOpts...)

	app := fx.New(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, app
}

func createTestConfig(backend string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Store.Backend = backend
	testConfig.Server.AdminToken = AdminToken
	return testConfig
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m", // PostgreSQLデータをRAMに載せてI/O削減
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off", // 耐久性よりパフォーマンスを優先
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "shared_buffers=256MB",
				"-c", "max_connections=200", // 並行購入テスト用
				"-c", "log_statement=none",
				"-c", "log_lock_waits=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	})
}

// ------------------------------------------------------------
// MongoDBコンテナ（単一ノードのレプリカセット）を一度だけ起動
// トランザクションはレプリカセットでしか使えない
// ------------------------------------------------------------
func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		mongoTestContainer, err = mongodb.Run(ctx, "mongo:7",
			mongodb.WithReplicaSet("rs0"),
		)
		require.NoError(t, err, "MongoDBコンテナの起動に失敗")
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
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
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend Backend
	Config  config.Config

	setup func(t *testing.T) (Backend, *gin.Engine, config.Config)
}

func NewPostgresSuite() SharedSuite { return SharedSuite{setup: setupPostgresEnvironment} }
func NewMongoSuite() SharedSuite    { return SharedSuite{setup: setupMongoEnvironment} }

func (s *SharedSuite) SetupSuite() {
	require.NotNil(s.T(), s.setup, "SharedSuiteはNewPostgresSuite/NewMongoSuiteで作成すること")
	backend, router, cfg := s.setup(s.T())
	s.Backend = backend
	s.Router = router
	s.Config = cfg
	require.NotNil(s.T(), s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupTest() {
	// Each test starts from empty collections/tables
	require.NoError(s.T(), s.Backend.Reset(), "Failed to reset database state")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), s.Backend.Reset(), "Failed to reset database state")
}
